package middleware

import (
	"net/http"

	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// NotAuthenticatedMessage é a mensagem devolvida ao painel em todo 401
const NotAuthenticatedMessage = "Non authentifié"

// RequireSession restringe a rota a usuários com sessão válida
func RequireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := SessionFromContext(r.Context()); !ok {
				logrus.WithField("path", r.URL.Path).Debug("Tentativa de acesso sem sessão")
				apiErrors.WriteError(w, apiErrors.ErrNotAuthenticated, NotAuthenticatedMessage, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdsCredentials exige, além da sessão, um refresh token do Google Ads
func RequireAdsCredentials() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := SessionFromContext(r.Context())
			if !ok || !session.HasAdsCredentials() {
				logrus.WithField("path", r.URL.Path).Debug("Sessão sem credenciais Google Ads")
				apiErrors.WriteError(w, apiErrors.ErrNotAuthenticated, NotAuthenticatedMessage, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

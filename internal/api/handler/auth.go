package handler

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/accolades/ads-dashboard-api/pkg/log"
	"github.com/accolades/ads-dashboard-api/pkg/middleware"
	"github.com/pkg/errors"
)

const (
	StateCookieName    = "ads_dashboard_oauth_state"
	VerifierCookieName = "ads_dashboard_oauth_verifier"
	AuthErrorParam     = "auth_error"

	loginCookiePath = "/api/auth"
	loginCookieTTL  = 10 * time.Minute
)

// AuthLogin redireciona para o consentimento do Google guardando state e verificador PKCE em cookie
func AuthLogin(service authenticating.Authenticator, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		login, err := service.BeginLogin()
		if err != nil {
			logger.WithError(err).Error("auth: falha ao iniciar login")
			writeServiceError(w, r, err)
			return
		}

		http.SetCookie(w, loginCookie(cfg, StateCookieName, login.State))
		http.SetCookie(w, loginCookie(cfg, VerifierCookieName, login.Verifier))

		logger.Debug("auth: redirecionando para o consentimento do Google")
		http.Redirect(w, r, login.URL, http.StatusFound)
	})
}

// AuthCallback troca o code, abre a sessão e volta para o painel
func AuthCallback(service authenticating.Authenticator, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		http.SetCookie(w, expiredCookie(cfg, StateCookieName, loginCookiePath))
		http.SetCookie(w, expiredCookie(cfg, VerifierCookieName, loginCookiePath))

		if consentErr := query.Get("error"); consentErr != "" {
			logger.WithField("error", consentErr).Warn("auth: consentimento recusado")
			redirectToDashboard(w, r, cfg, consentErr)
			return
		}

		req := authenticating.CallbackRequest{
			Code:          query.Get("code"),
			State:         query.Get("state"),
			ExpectedState: cookieValue(r, StateCookieName),
			Verifier:      cookieValue(r, VerifierCookieName),
		}

		result, err := service.CompleteLogin(r.Context(), req)
		if err != nil {
			code := apiErrors.ErrInternalServer
			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) {
				code = authErr.Code
			}

			logger.WithError(err).WithField("code", code).Warn("auth: falha no callback")
			redirectToDashboard(w, r, cfg, code)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cfg.Auth.CookieName,
			Value:    result.Token,
			Path:     "/",
			Expires:  result.Session.ExpiresAt,
			HttpOnly: true,
			Secure:   cfg.Auth.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		})

		logger.WithField("user_email", result.Session.Email).Info("auth: login concluído")
		redirectToDashboard(w, r, cfg, "")
	})
}

// AuthSession devolve a sessão atual
func AuthSession() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotAuthenticated, middleware.NotAuthenticatedMessage, nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"authenticated": true,
			"user":          session.Info(),
		})
	})
}

// WorkspaceForgetter libera o estado em memória de uma sessão encerrada
type WorkspaceForgetter interface {
	ForgetWorkspace(sessionID string)
}

// AuthLogout apaga a sessão e o cookie; sem cookie a resposta é a mesma
func AuthLogout(service authenticating.Authenticator, workspaces WorkspaceForgetter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if session, ok := middleware.SessionFromContext(r.Context()); ok && workspaces != nil {
			workspaces.ForgetWorkspace(session.ID)
		}

		if token := cookieValue(r, cfg.Auth.CookieName); token != "" {
			if err := service.Logout(r.Context(), token); err != nil {
				logger.WithError(err).Warn("auth: falha ao encerrar sessão")
			}
		}

		http.SetCookie(w, expiredCookie(cfg, cfg.Auth.CookieName, "/"))
		writeJSON(w, r, http.StatusOK, map[string]any{"success": true})
	})
}

func loginCookie(cfg *config.Config, name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     loginCookiePath,
		MaxAge:   int(loginCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func expiredCookie(cfg *config.Config, name, path string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func redirectToDashboard(w http.ResponseWriter, r *http.Request, cfg *config.Config, authError string) {
	target := cfg.Server.PublicURL
	if target == "" {
		target = "/"
	}

	if authError != "" {
		target = strings.TrimSuffix(target, "/") + "/?" + url.Values{AuthErrorParam: {authError}}.Encode()
	}

	http.Redirect(w, r, target, http.StatusFound)
}

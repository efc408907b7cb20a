package middleware

import (
	"context"
	"net/http"

	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/accolades/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/accolades/ads-dashboard-api/pkg/log"
)

type contextKey string

const (
	ContextKeySession contextKey = "session"
)

// SessionMiddleware carrega a sessão do cookie, quando houver. Rotas que
// exigem login usam RequireSession ou RequireAdsCredentials.
func SessionMiddleware(authService authenticating.Authenticator, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := authService.GetSession(r.Context(), cookie.Value)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Debug("Cookie de sessão ignorado")
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithSession(r.Context(), session)
			ctx = log.WithSession(ctx, session.ID, session.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, ContextKeySession, session)
}

func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(ContextKeySession).(*domain.Session)
	return session, ok && session != nil
}

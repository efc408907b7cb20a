package googleadsclient

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"sync"

	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

// Escopos pedidos no login: e-mail do usuário e acesso ao Google Ads
var OAuthScopes = []string{
	"openid",
	"email",
	"profile",
	"https://www.googleapis.com/auth/adwords",
}

// NewOAuthConfig monta a configuração OAuth2 do Google a partir do ambiente
func NewOAuthConfig(cfg *config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleAds.ClientID,
		ClientSecret: cfg.GoogleAds.ClientSecret,
		RedirectURL:  cfg.GoogleAds.RedirectURL,
		Endpoint:     endpoints.Google,
		Scopes:       OAuthScopes,
	}
}

// TokenManager mantém um TokenSource reutilizável por refresh token,
// de modo que o access token só é renovado quando expira
type TokenManager struct {
	oauthConfig *oauth2.Config
	httpClient  *http.Client

	mu      sync.Mutex
	sources map[string]oauth2.TokenSource
}

func NewTokenManager(oauthConfig *oauth2.Config, httpClient *http.Client) *TokenManager {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &TokenManager{
		oauthConfig: oauthConfig,
		httpClient:  httpClient,
		sources:     make(map[string]oauth2.TokenSource),
	}
}

// AccessToken devolve um access token válido para o refresh token informado
func (tm *TokenManager) AccessToken(refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", fmt.Errorf("refresh token ausente")
	}

	token, err := tm.source(refreshToken).Token()
	if err != nil {
		// Um refresh token revogado não deve continuar em cache
		tm.Forget(refreshToken)
		return "", fmt.Errorf("erro ao renovar access token: %w", err)
	}

	return token.AccessToken, nil
}

func (tm *TokenManager) source(refreshToken string) oauth2.TokenSource {
	key := tokenKey(refreshToken)

	tm.mu.Lock()
	defer tm.mu.Unlock()

	if src, ok := tm.sources[key]; ok {
		return src
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, tm.httpClient)
	src := tm.oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	tm.sources[key] = src

	logrus.WithField("cached_sources", len(tm.sources)).Debug("googleads: novo token source registrado")
	return src
}

// Forget remove o token source de um refresh token (logout ou revogação)
func (tm *TokenManager) Forget(refreshToken string) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	delete(tm.sources, tokenKey(refreshToken))
}

func tokenKey(refreshToken string) string {
	sum := sha256.Sum256([]byte(refreshToken))
	return hex.EncodeToString(sum[:])
}

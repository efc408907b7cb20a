package authenticating

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/accolades/ads-dashboard-api/infrastructure/integrator/googleads"
	"github.com/accolades/ads-dashboard-api/infrastructure/repository"
	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/accolades/ads-dashboard-api/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	UserInfoURL       = "https://openidconnect.googleapis.com/v1/userinfo"
	defaultSessionTTL = 30 * 24 * time.Hour
	stateLength       = 24
)

// OAuthProvider é o subconjunto de *oauth2.Config usado no login
type OAuthProvider interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
	Client(ctx context.Context, t *oauth2.Token) *http.Client
}

type Authenticator interface {
	BeginLogin() (*LoginRequest, error)
	CompleteLogin(ctx context.Context, req CallbackRequest) (*LoginResult, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetSession(ctx context.Context, tokenString string) (*domain.Session, error)
	Logout(ctx context.Context, tokenString string) error
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}

// LoginRequest carrega a URL de consentimento e os valores que o handler
// guarda em cookie até o callback
type LoginRequest struct {
	URL      string
	State    string
	Verifier string
}

type CallbackRequest struct {
	Code          string
	State         string
	ExpectedState string
	Verifier      string
}

type LoginResult struct {
	Session *domain.Session
	Token   string
}

type Service struct {
	sessionRepo repository.SessionRepository
	googleAds   googleads.GoogleAdsIntegrator
	oauth       OAuthProvider
	cipher      *TokenCipher
	cfg         *config.Config
	userInfoURL string
	now         func() time.Time
}

func NewService(
	sessionRepo repository.SessionRepository,
	googleAds googleads.GoogleAdsIntegrator,
	oauth OAuthProvider,
	cipher *TokenCipher,
	cfg *config.Config,
) Authenticator {
	return &Service{
		sessionRepo: sessionRepo,
		googleAds:   googleAds,
		oauth:       oauth,
		cipher:      cipher,
		cfg:         cfg,
		userInfoURL: UserInfoURL,
		now:         time.Now,
	}
}

// BeginLogin gera state e verificador PKCE e monta a URL de consentimento.
// access_type=offline com prompt=consent garante o refresh token.
func (s *Service) BeginLogin() (*LoginRequest, error) {
	state, err := utils.GenerateToken(stateLength)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "erro ao gerar state")
	}

	verifier := oauth2.GenerateVerifier()
	url := s.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.ApprovalForce,
		oauth2.S256ChallengeOption(verifier),
	)

	return &LoginRequest{
		URL:      url,
		State:    state,
		Verifier: verifier,
	}, nil
}

// CompleteLogin troca o code, lê o perfil do usuário e abre a sessão
func (s *Service) CompleteLogin(ctx context.Context, req CallbackRequest) (*LoginResult, error) {
	if req.ExpectedState == "" || subtle.ConstantTimeCompare([]byte(req.State), []byte(req.ExpectedState)) != 1 {
		return nil, NewAuthError(ErrInvalidState, apiErrors.ErrInvalidOAuthState, "")
	}

	if req.Code == "" {
		return nil, NewAuthError(ErrMissingCode, apiErrors.ErrMissingRequiredData, "")
	}

	token, err := s.oauth.Exchange(ctx, req.Code, oauth2.VerifierOption(req.Verifier))
	if err != nil {
		logrus.WithError(err).Error("authenticating: erro ao trocar code OAuth")
		return nil, NewAuthError(ErrOAuthExchange, apiErrors.ErrOAuthExchange, err.Error())
	}

	user, err := s.fetchUser(ctx, token)
	if err != nil {
		return nil, err
	}

	if token.RefreshToken == "" {
		logrus.WithField("user_email", user.Email).Warn("authenticating: Google não devolveu refresh token")
	}

	encrypted, err := s.cipher.Encrypt(token.RefreshToken)
	if err != nil {
		return nil, NewUserAuthError(err, apiErrors.ErrInternalServer, user.Email, "erro ao cifrar refresh token")
	}

	now := s.now().UTC()
	session := &domain.Session{
		ID:           uuid.NewString(),
		Email:        user.Email,
		Name:         user.Name,
		Picture:      user.Picture,
		RefreshToken: encrypted,
		ExpiresAt:    now.Add(s.sessionTTL()),
		CreatedAt:    now,
	}

	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, NewUserAuthError(ErrDatabaseAccess, apiErrors.ErrDatabaseOperation, user.Email, err.Error())
	}

	signed, err := s.signToken(session)
	if err != nil {
		return nil, NewUserAuthError(err, apiErrors.ErrInternalServer, user.Email, "erro ao gerar token de sessão")
	}

	session.RefreshToken = token.RefreshToken

	logrus.WithFields(logrus.Fields{
		"user_email": session.Email,
		"session_id": session.ID,
	}).Info("authenticating: sessão criada")

	return &LoginResult{
		Session: session,
		Token:   signed,
	}, nil
}

func (s *Service) fetchUser(ctx context.Context, token *oauth2.Token) (*domain.GoogleUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, NewAuthError(ErrUserInfo, apiErrors.ErrOAuthExchange, err.Error())
	}

	resp, err := s.oauth.Client(ctx, token).Do(req)
	if err != nil {
		return nil, NewAuthError(ErrUserInfo, apiErrors.ErrOAuthExchange, err.Error())
	}
	defer resp.Body.Close()

	body, err := utils.ReadBody(resp)
	if err != nil {
		return nil, NewAuthError(ErrUserInfo, apiErrors.ErrOAuthExchange, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, NewAuthError(ErrUserInfo, apiErrors.ErrOAuthExchange, fmt.Sprintf("status %d", resp.StatusCode))
	}

	var user domain.GoogleUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, NewAuthError(ErrUserInfo, apiErrors.ErrOAuthExchange, err.Error())
	}

	if user.Email == "" {
		return nil, NewAuthError(ErrMissingEmail, apiErrors.ErrOAuthExchange, "")
	}

	return &user, nil
}

func (s *Service) sessionTTL() time.Duration {
	if s.cfg.Auth.SessionTTL <= 0 {
		return defaultSessionTTL
	}
	return s.cfg.Auth.SessionTTL
}

func (s *Service) signToken(session *domain.Session) (string, error) {
	claims := domain.Claims{
		SessionID: session.ID,
		UserEmail: session.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.Email,
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return []byte(s.cfg.SecretKey), nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, NewAuthError(ErrNotAuthenticated, apiErrors.ErrNotAuthenticated, "")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, s.keyFunc, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

// GetSession valida o cookie e devolve a sessão com o refresh token em claro
func (s *Service) GetSession(ctx context.Context, tokenString string) (*domain.Session, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetSessionByID(ctx, claims.SessionID)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseAccess, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if session == nil {
		return nil, NewAuthError(ErrSessionNotFound, apiErrors.ErrNotAuthenticated, "")
	}

	if session.IsExpired(s.now()) {
		if err := s.sessionRepo.DeleteSession(ctx, session.ID); err != nil {
			logrus.WithError(err).WithField("session_id", session.ID).Warn("authenticating: erro ao remover sessão expirada")
		}
		return nil, NewUserAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, session.Email, "")
	}

	refreshToken, err := s.cipher.Decrypt(session.RefreshToken)
	if err != nil {
		logrus.WithError(err).WithField("session_id", session.ID).Warn("authenticating: refresh token ilegível")
		return nil, NewUserAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, session.Email, "")
	}
	session.RefreshToken = refreshToken

	return session, nil
}

// Logout remove a sessão mesmo com o cookie expirado; um cookie inválido
// não tem sessão a remover
func (s *Service) Logout(ctx context.Context, tokenString string) error {
	claims := &domain.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc, jwt.WithoutClaimsValidation())
	if err != nil || claims.SessionID == "" {
		return nil
	}

	session, err := s.sessionRepo.GetSessionByID(ctx, claims.SessionID)
	if err != nil {
		return NewAuthError(ErrDatabaseAccess, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if session == nil {
		return nil
	}

	if refreshToken, err := s.cipher.Decrypt(session.RefreshToken); err == nil && refreshToken != "" {
		s.googleAds.ForgetToken(refreshToken)
	}

	if err := s.sessionRepo.DeleteSession(ctx, session.ID); err != nil {
		return NewUserAuthError(ErrDatabaseAccess, apiErrors.ErrDatabaseOperation, session.Email, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"user_email": session.Email,
		"session_id": session.ID,
	}).Info("authenticating: sessão encerrada")

	return nil
}

func (s *Service) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := s.sessionRepo.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return 0, NewAuthError(ErrDatabaseAccess, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return removed, nil
}

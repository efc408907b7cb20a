package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Session struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Picture      string    `json:"picture,omitempty"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

func (s *Session) HasAdsCredentials() bool {
	return s != nil && s.RefreshToken != ""
}

// SessionInfo é a visão pública da sessão
type SessionInfo struct {
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Picture          string    `json:"picture,omitempty"`
	ExpiresAt        time.Time `json:"expires_at"`
	HasAdsCredential bool      `json:"has_ads_credentials"`
}

func (s *Session) Info() SessionInfo {
	return SessionInfo{
		Email:            s.Email,
		Name:             s.Name,
		Picture:          s.Picture,
		ExpiresAt:        s.ExpiresAt,
		HasAdsCredential: s.HasAdsCredentials(),
	}
}

// Claims é o conteúdo do cookie de sessão
type Claims struct {
	SessionID string `json:"sid"`
	UserEmail string `json:"email"`
	jwt.RegisteredClaims
}

// GoogleUser é o perfil devolvido pelo endpoint userinfo
type GoogleUser struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

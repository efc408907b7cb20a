package authenticating

import (
	"errors"
	"fmt"
)

// Tipos de erros de autenticação personalizados
var (
	// Erros de sessão
	ErrNotAuthenticated = errors.New("non authentifié")
	ErrSessionNotFound  = errors.New("session introuvable")
	ErrInvalidToken     = errors.New("token invalide")
	ErrExpiredToken     = errors.New("session expirée")

	// Erros do fluxo OAuth
	ErrInvalidState   = errors.New("state OAuth invalide")
	ErrMissingCode    = errors.New("code d'autorisation manquant")
	ErrOAuthExchange  = errors.New("échec de l'échange du code OAuth")
	ErrUserInfo       = errors.New("impossible de lire le profil Google")
	ErrMissingEmail   = errors.New("profil Google sans e-mail")
	ErrDatabaseAccess = errors.New("erreur de base de données")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Email   string // Usuário envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsSessionError verifica se o erro exige um novo login
func IsSessionError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated) ||
		errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewUserAuthError cria um novo erro de autenticação com contexto de usuário
func NewUserAuthError(baseErr error, code string, email string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Email:   email,
		Details: details,
	}
}

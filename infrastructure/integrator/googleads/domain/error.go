package googleadsdomain

import (
	"errors"
	"fmt"
)

// ErrSearchTruncated indica que a consulta passou do limite de páginas
var ErrSearchTruncated = errors.New("consulta google ads truncada: limite de páginas atingido")

// ErrorResponse representa a estrutura de erro da API do Google Ads
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// APIError é devolvido quando o Google Ads responde com status diferente de 2xx
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("google ads respondeu %d (%s): %s", e.StatusCode, e.Status, e.Message)
}

// IsAuthError indica que o token do usuário foi recusado
func (e *APIError) IsAuthError() bool {
	return e.StatusCode == 401 || e.Status == "UNAUTHENTICATED"
}

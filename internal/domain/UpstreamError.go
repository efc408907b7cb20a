package domain

import (
	"errors"
	"fmt"
)

// UpstreamError é devolvido quando um serviço externo responde fora da faixa 2xx
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s respondeu %d: %s", e.Service, e.StatusCode, e.Body)
}

// AsUpstreamError extrai o UpstreamError de uma cadeia de erros
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr, true
	}
	return nil, false
}

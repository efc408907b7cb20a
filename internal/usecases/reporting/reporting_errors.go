package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated  = errors.New("non authentifié")
	ErrAccountIDRequired = errors.New("identifiant de compte requis")
	ErrListAccounts      = errors.New("erreur lors de la récupération des comptes")
)

// ReportError carrega o código de API junto do erro base
type ReportError struct {
	Err       error
	Code      string
	AccountID string
	Details   string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

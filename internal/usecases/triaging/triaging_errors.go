package triaging

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSession = errors.New("session requise")
	ErrNoTermIDs      = errors.New("aucun terme indiqué")
	ErrInvalidStep    = errors.New("étape inconnue")
)

// TriageError associa um erro de triagem ao código de API
type TriageError struct {
	Err     error
	Code    string
	Details string
}

func (e *TriageError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TriageError) Unwrap() error {
	return e.Err
}

func NewTriageError(err error, code string, details string) *TriageError {
	return &TriageError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

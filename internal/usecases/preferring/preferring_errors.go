package preferring

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownDateRange = errors.New("période inconnue")
	ErrUnknownAccount   = errors.New("compte inconnu")
	ErrStorage          = errors.New("erreur lors de l'enregistrement des préférences")
)

type PreferenceError struct {
	Err     error
	Code    string
	Details string
}

func (e *PreferenceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PreferenceError) Unwrap() error {
	return e.Err
}

func NewPreferenceError(err error, code string, details string) *PreferenceError {
	return &PreferenceError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

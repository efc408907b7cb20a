package tabling

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownTable    = errors.New("table invalide")
	ErrMissingRecordID = errors.New("id requis pour la mise à jour")
)

// TableError é devolvido quando a tabela pedida não é reconhecida
type TableError struct {
	Err         error
	Code        string
	Details     string
	ValidTables []string
}

func (e *TableError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TableError) Unwrap() error {
	return e.Err
}

func NewTableError(err error, code string, details string) *TableError {
	return &TableError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

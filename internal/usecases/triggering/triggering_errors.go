package triggering

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownWorkflow = errors.New("workflow non trouvé dans la configuration")
	ErrMissingWebhook  = errors.New("webhookPath ou workflowId est requis")
	ErrTriggerFailed   = errors.New("erreur lors du déclenchement du workflow")
)

// TriggerError guarda o workflow envolvido e o código de API
type TriggerError struct {
	Err        error
	Code       string
	WorkflowID string
	Details    string
}

func (e *TriggerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TriggerError) Unwrap() error {
	return e.Err
}

func NewTriggerError(err error, code string, workflowID string, details string) *TriggerError {
	return &TriggerError{
		Err:        err,
		Code:       code,
		WorkflowID: workflowID,
		Details:    details,
	}
}

package domain

import "time"

type WorkflowRunStatus string

const (
	WorkflowRunRunning WorkflowRunStatus = "running"
	WorkflowRunSuccess WorkflowRunStatus = "success"
	WorkflowRunError   WorkflowRunStatus = "error"
)

const (
	TriggerSourceDashboard = "dashboard"
	TriggerSourceScheduler = "scheduler"
)

type WorkflowRun struct {
	ID           string            `json:"id"`
	WorkflowID   string            `json:"workflow_id"`
	WorkflowName string            `json:"workflow_name"`
	WebhookPath  string            `json:"webhook_path"`
	Status       WorkflowRunStatus `json:"status"`
	Message      string            `json:"message"`
	Source       string            `json:"source"`
	TriggeredBy  string            `json:"triggered_by,omitempty"`
	TriggeredAt  time.Time         `json:"triggered_at"`
	CompletedAt  *time.Time        `json:"completed_at,omitempty"`
}

// TriggerRequest é o corpo aceito em POST /api/trigger
type TriggerRequest struct {
	WebhookPath string         `json:"webhookPath"`
	WorkflowID  string         `json:"workflowId"`
	Data        map[string]any `json:"data"`
	Payload     map[string]any `json:"payload"`
}

type TriggerResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Result  any    `json:"result"`
	RunID   string `json:"runId,omitempty"`
}

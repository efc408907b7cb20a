package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/accolades/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/accolades/ads-dashboard-api/internal/domain"
)

const (
	workflowRunsTable      = "workflow_runs"
	defaultWorkflowRunsMax = 50
)

type WorkflowRunRepository interface {
	CreateRun(ctx context.Context, run *domain.WorkflowRun) error
	FinishRun(ctx context.Context, id string, status domain.WorkflowRunStatus, message string, completedAt time.Time) error
	ListRecentRuns(ctx context.Context, workflowID string, limit int) ([]*domain.WorkflowRun, error)
}

type workflowRunRepository struct {
	conn postgres.Queryer
}

func NewWorkflowRunRepository(conn postgres.Queryer) WorkflowRunRepository {
	return &workflowRunRepository{
		conn: conn,
	}
}

func (r *workflowRunRepository) CreateRun(ctx context.Context, run *domain.WorkflowRun) error {
	query, args, err := squirrel.
		Insert(workflowRunsTable).
		Columns("id", "workflow_id", "workflow_name", "webhook_path", "status", "message", "source", "triggered_by", "triggered_at").
		Values(run.ID, run.WorkflowID, run.WorkflowName, run.WebhookPath, run.Status, run.Message, run.Source, run.TriggeredBy, run.TriggeredAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

func (r *workflowRunRepository) FinishRun(ctx context.Context, id string, status domain.WorkflowRunStatus, message string, completedAt time.Time) error {
	query, args, err := squirrel.
		Update(workflowRunsTable).
		Set("status", status).
		Set("message", message).
		Set("completed_at", completedAt).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

func (r *workflowRunRepository) ListRecentRuns(ctx context.Context, workflowID string, limit int) ([]*domain.WorkflowRun, error) {
	if limit <= 0 || limit > defaultWorkflowRunsMax {
		limit = defaultWorkflowRunsMax
	}

	queryBuilder := squirrel.
		Select("id", "workflow_id", "workflow_name", "webhook_path", "status", "message", "source", "triggered_by", "triggered_at", "completed_at").
		From(workflowRunsTable).
		OrderBy("triggered_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if workflowID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"workflow_id": workflowID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]*domain.WorkflowRun, 0)
	for rows.Next() {
		var run domain.WorkflowRun
		if err := rows.Scan(
			&run.ID,
			&run.WorkflowID,
			&run.WorkflowName,
			&run.WebhookPath,
			&run.Status,
			&run.Message,
			&run.Source,
			&run.TriggeredBy,
			&run.TriggeredAt,
			&run.CompletedAt,
		); err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}

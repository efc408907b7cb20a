package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/accolades/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/accolades/ads-dashboard-api/internal/domain"
)

const sessionsTable = "sessions"

// SessionRepository persiste as sessões. O refresh token chega já cifrado.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSessionByID(ctx context.Context, id string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type sessionRepository struct {
	conn postgres.Queryer
}

func NewSessionRepository(conn postgres.Queryer) SessionRepository {
	return &sessionRepository{
		conn: conn,
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session *domain.Session) error {
	queryBuilder := squirrel.
		Insert(sessionsTable).
		Columns("id", "email", "name", "picture", "refresh_token", "expires_at", "created_at").
		Values(session.ID, session.Email, session.Name, session.Picture, session.RefreshToken, session.ExpiresAt, session.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

func (r *sessionRepository) GetSessionByID(ctx context.Context, id string) (*domain.Session, error) {
	queryBuilder := squirrel.
		Select("id", "email", "name", "picture", "refresh_token", "expires_at", "created_at").
		From(sessionsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var session domain.Session
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&session.ID,
		&session.Email,
		&session.Name,
		&session.Picture,
		&session.RefreshToken,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(sessionsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(sessionsTable).
		Where(squirrel.LtOrEq{"expires_at": now}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

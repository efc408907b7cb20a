package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestSessionRepository_CreateSession(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	session := &domain.Session{
		ID:           "sess-1",
		Email:        "ana@accolades.ca",
		Name:         "Ana",
		RefreshToken: "cifrado",
		ExpiresAt:    now.Add(time.Hour),
		CreatedAt:    now,
	}

	mock.ExpectExec(`INSERT INTO sessions`).
		WithArgs(session.ID, session.Email, session.Name, session.Picture, session.RefreshToken, session.ExpiresAt, session.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateSession(context.Background(), session)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_GetSessionByID(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	columns := []string{"id", "email", "name", "picture", "refresh_token", "expires_at", "created_at"}

	t.Run("sessão encontrada", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSessionRepository(db)

		mock.ExpectQuery(`SELECT .+ FROM sessions WHERE id = \$1`).
			WithArgs("sess-1").
			WillReturnRows(sqlmock.NewRows(columns).AddRow("sess-1", "ana@accolades.ca", "Ana", "", "cifrado", now.Add(time.Hour), now))

		session, err := repo.GetSessionByID(context.Background(), "sess-1")
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "ana@accolades.ca", session.Email)
		assert.Equal(t, "cifrado", session.RefreshToken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sessão inexistente retorna nil", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSessionRepository(db)

		mock.ExpectQuery(`SELECT .+ FROM sessions WHERE id = \$1`).
			WithArgs("nao-existe").
			WillReturnError(sql.ErrNoRows)

		session, err := repo.GetSessionByID(context.Background(), "nao-existe")
		assert.NoError(t, err)
		assert.Nil(t, session)
	})
}

func TestSessionRepository_DeleteExpiredSessions(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(`DELETE FROM sessions WHERE expires_at <= \$1`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteExpiredSessions(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/accolades/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/lib/pq"
)

const preferencesTable = "user_preferences"

type PreferenceRepository interface {
	GetPreferences(ctx context.Context, email string) (*domain.Preferences, error)
	SavePreferences(ctx context.Context, prefs *domain.Preferences) error
}

type preferenceRepository struct {
	conn postgres.Queryer
}

func NewPreferenceRepository(conn postgres.Queryer) PreferenceRepository {
	return &preferenceRepository{
		conn: conn,
	}
}

func (r *preferenceRepository) GetPreferences(ctx context.Context, email string) (*domain.Preferences, error) {
	query, args, err := squirrel.
		Select("user_email", "date_range_id", "custom_start_date", "custom_end_date", "visible_account_ids", "sidebar_collapsed", "selected_client_id", "updated_at").
		From(preferencesTable).
		Where(squirrel.Eq{"user_email": email}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var (
		prefs            domain.Preferences
		customStart      sql.NullString
		customEnd        sql.NullString
		selectedClientID sql.NullInt64
	)

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&prefs.UserEmail,
		&prefs.DateRangeID,
		&customStart,
		&customEnd,
		pq.Array(&prefs.VisibleAccountIDs),
		&prefs.SidebarCollapsed,
		&selectedClientID,
		&prefs.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	prefs.CustomDateRange = domain.DateRange{StartDate: customStart.String, EndDate: customEnd.String}
	prefs.SelectedClientID = selectedClientID.Int64
	if prefs.VisibleAccountIDs == nil {
		prefs.VisibleAccountIDs = []string{}
	}

	return &prefs, nil
}

func (r *preferenceRepository) SavePreferences(ctx context.Context, prefs *domain.Preferences) error {
	query, args, err := squirrel.
		Insert(preferencesTable).
		Columns("user_email", "date_range_id", "custom_start_date", "custom_end_date", "visible_account_ids", "sidebar_collapsed", "selected_client_id", "updated_at").
		Values(
			prefs.UserEmail,
			prefs.DateRangeID,
			nullString(prefs.CustomDateRange.StartDate),
			nullString(prefs.CustomDateRange.EndDate),
			pq.Array(prefs.VisibleAccountIDs),
			prefs.SidebarCollapsed,
			nullInt64(prefs.SelectedClientID),
			prefs.UpdatedAt,
		).
		Suffix(`ON CONFLICT (user_email) DO UPDATE SET
			date_range_id = EXCLUDED.date_range_id,
			custom_start_date = EXCLUDED.custom_start_date,
			custom_end_date = EXCLUDED.custom_end_date,
			visible_account_ids = EXCLUDED.visible_account_ids,
			sidebar_collapsed = EXCLUDED.sidebar_collapsed,
			selected_client_id = EXCLUDED.selected_client_id,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64(i int64) sql.NullInt64 {
	return sql.NullInt64{Int64: i, Valid: i != 0}
}

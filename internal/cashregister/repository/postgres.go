package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/velmora/pos-backoffice/internal/model"
	"github.com/velmora/pos-backoffice/pkg/database/postgres"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) InsertMovement(ctx context.Context, m *model.CashMovement) error {
	q := postgres.QuerierFromContext(ctx, r.DB)
	_, err := sqlx.NamedExecContext(ctx, q, `
        INSERT INTO cash_movements (
            id, status, created_at, updated_at, created_by, modified_by,
            operation_type, amount, description, user_id, reference_id
        )
        VALUES (
            :id, :status, :created_at, :updated_at, :created_by, :modified_by,
            :operation_type, :amount, :description, :user_id, :reference_id
        )
    `, m)
	return err
}

func (r *PGRepository) ListByDay(ctx context.Context, day time.Time) ([]model.CashMovement, error) {
	q := postgres.QuerierFromContext(ctx, r.DB)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var items []model.CashMovement
	err := q.SelectContext(ctx, &items, `
        SELECT * FROM cash_movements
        WHERE created_at >= $1 AND created_at < $2 AND status = true
        ORDER BY created_at ASC
    `, start, end)
	return items, err
}

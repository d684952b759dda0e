package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/velmora/pos-backoffice/internal/apperr"
	"github.com/velmora/pos-backoffice/pkg/database/postgres"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// Next locks the counter row, increments it and returns the new value. Counter
// rows are seeded by migration; a missing row fails loudly instead of silently
// starting a new series.
func (r *PGRepository) Next(ctx context.Context, name string) (int64, error) {
	tx := postgres.TxFromContext(ctx)
	if tx == nil {
		return 0, errors.New("sequence: Next requires an enclosing transaction")
	}

	var current int64
	err := tx.GetContext(ctx, &current,
		`SELECT sequence_number FROM control_sequences WHERE name = $1 FOR UPDATE`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperr.Newf(apperr.KindNotFound, "sequence counter %q not found", name)
		}
		return 0, err
	}

	next := current + 1
	if _, err := tx.ExecContext(ctx,
		`UPDATE control_sequences SET sequence_number = $1 WHERE name = $2`, next, name); err != nil {
		return 0, err
	}
	return next, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/velmora/pos-backoffice/internal/apperr"
	"github.com/velmora/pos-backoffice/internal/inventory/dto"
	"github.com/velmora/pos-backoffice/internal/model"
	"github.com/velmora/pos-backoffice/pkg/database/postgres"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// AdjustStock locks the product row, applies the signed delta and writes the
// movement audit row. Stock may go negative; the legacy system never enforced a
// floor and callers rely on that.
func (r *PGRepository) AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.InventoryMovement, error) {
	q := postgres.QuerierFromContext(ctx, r.DB)

	var before int64
	err := q.GetContext(ctx, &before,
		`SELECT stock FROM products WHERE id = $1 FOR UPDATE`, input.ProductID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.KindNotFound, "product not found")
		}
		return nil, err
	}

	after := before + input.QuantityChange

	if input.LastPurchase != nil {
		_, err = q.ExecContext(ctx,
			`UPDATE products
			 SET stock = $1, last_purchase_price = $2, last_buy_date = $3, updated_at = now()
			 WHERE id = $4`,
			after, input.LastPurchase.Price, input.LastPurchase.Date, input.ProductID)
	} else {
		_, err = q.ExecContext(ctx,
			`UPDATE products SET stock = $1, updated_at = now() WHERE id = $2`,
			after, input.ProductID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	movement := &model.InventoryMovement{
		ID:             uuid.New().String(),
		ProductID:      input.ProductID,
		MovementType:   input.MovementType,
		QuantityChange: input.QuantityChange,
		QuantityBefore: before,
		QuantityAfter:  after,
		ReferenceType:  nilIfEmpty(input.ReferenceType),
		ReferenceID:    nilIfEmpty(input.ReferenceID),
		Notes:          input.Notes,
		CreatedBy:      nilIfEmpty(input.UserID),
		CreatedAt:      time.Now(),
	}

	_, err = sqlx.NamedExecContext(ctx, q, `
        INSERT INTO inventory_movements (
            id, product_id, movement_type, quantity_change, quantity_before,
            quantity_after, reference_type, reference_id, notes, created_by, created_at
        )
        VALUES (
            :id, :product_id, :movement_type, :quantity_change, :quantity_before,
            :quantity_after, :reference_type, :reference_id, :notes, :created_by, :created_at
        )
    `, movement)
	if err != nil {
		return nil, fmt.Errorf("failed to log movement: %w", err)
	}

	return movement, nil
}

func (r *PGRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.ProductID != "" {
		conditions = append(conditions, "product_id = :product_id")
		args["product_id"] = f.ProductID
	}
	if f.MovementType != "" {
		conditions = append(conditions, "movement_type = :movement_type")
		args["movement_type"] = f.MovementType
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	countQuery := "SELECT count(*) FROM inventory_movements" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return nil, 0, err
		}
	}

	query := "SELECT * FROM inventory_movements" + whereClause + " ORDER BY created_at DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	var items []model.InventoryMovement
	err = nstmt.SelectContext(ctx, &items, args)
	return items, count, err
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

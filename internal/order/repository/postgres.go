package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/velmora/pos-backoffice/internal/model"
	"github.com/velmora/pos-backoffice/internal/order/dto"
	"github.com/velmora/pos-backoffice/pkg/database/postgres"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CreateOrder(ctx context.Context, o *model.Order) error {
	q := postgres.QuerierFromContext(ctx, r.DB)
	_, err := sqlx.NamedExecContext(ctx, q, `
        INSERT INTO orders (
            id, status, created_at, updated_at, created_by, modified_by,
            kind, number, party_id, date, observation,
            subtotal, discount, tax, total_amount
        )
        VALUES (
            :id, :status, :created_at, :updated_at, :created_by, :modified_by,
            :kind, :number, :party_id, :date, :observation,
            :subtotal, :discount, :tax, :total_amount
        )
    `, o)
	return err
}

func (r *PGRepository) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	return r.getOrder(ctx, id, false)
}

func (r *PGRepository) GetOrderForUpdate(ctx context.Context, id string) (*model.Order, error) {
	if postgres.TxFromContext(ctx) == nil {
		return nil, errors.New("order: GetOrderForUpdate requires an enclosing transaction")
	}
	return r.getOrder(ctx, id, true)
}

func (r *PGRepository) getOrder(ctx context.Context, id string, forUpdate bool) (*model.Order, error) {
	q := postgres.QuerierFromContext(ctx, r.DB)
	query := `SELECT * FROM orders WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var o model.Order
	err := q.GetContext(ctx, &o, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *PGRepository) UpdateHeaderTotals(ctx context.Context, o *model.Order) error {
	q := postgres.QuerierFromContext(ctx, r.DB)
	_, err := sqlx.NamedExecContext(ctx, q, `
        UPDATE orders SET
            subtotal = :subtotal, discount = :discount, tax = :tax,
            total_amount = :total_amount, modified_by = :modified_by, updated_at = now()
        WHERE id = :id
    `, o)
	return err
}

func (r *PGRepository) ListOrders(ctx context.Context, f *dto.OrderFilters) ([]model.Order, int, error) {
	conditions := []string{"kind = :kind"}
	args := map[string]interface{}{"kind": string(f.Kind)}

	if f.Number != "" {
		conditions = append(conditions, "number = :number")
		args["number"] = strings.ToUpper(f.Number)
	}
	if f.PartyID != "" {
		conditions = append(conditions, "party_id = :party_id")
		args["party_id"] = f.PartyID
	}
	if f.ActiveOnly {
		conditions = append(conditions, "status = true")
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	var count int
	rows, err := r.DB.NamedQueryContext(ctx, "SELECT count(*) FROM orders"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return nil, 0, err
		}
	}

	query := "SELECT * FROM orders" + whereClause + " ORDER BY date DESC, created_at DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	var items []model.Order
	err = nstmt.SelectContext(ctx, &items, args)
	return items, count, err
}

func (r *PGRepository) InsertLine(ctx context.Context, l *model.OrderLine) error {
	q := postgres.QuerierFromContext(ctx, r.DB)
	_, err := sqlx.NamedExecContext(ctx, q, `
        INSERT INTO order_lines (
            id, status, created_at, updated_at, created_by, modified_by,
            order_id, product_id, quantity, unit_price, discount, tax,
            subtotal, total_price
        )
        VALUES (
            :id, :status, :created_at, :updated_at, :created_by, :modified_by,
            :order_id, :product_id, :quantity, :unit_price, :discount, :tax,
            :subtotal, :total_price
        )
    `, l)
	return err
}

func (r *PGRepository) GetLine(ctx context.Context, orderID, lineID string) (*model.OrderLine, error) {
	q := postgres.QuerierFromContext(ctx, r.DB)
	var l model.OrderLine
	err := q.GetContext(ctx, &l,
		`SELECT * FROM order_lines WHERE id = $1 AND order_id = $2`, lineID, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *PGRepository) DeleteLine(ctx context.Context, lineID string) error {
	q := postgres.QuerierFromContext(ctx, r.DB)
	_, err := q.ExecContext(ctx, `DELETE FROM order_lines WHERE id = $1`, lineID)
	return err
}

func (r *PGRepository) VoidLine(ctx context.Context, lineID, modifiedBy string) error {
	q := postgres.QuerierFromContext(ctx, r.DB)
	_, err := q.ExecContext(ctx, `
        UPDATE order_lines
        SET status = false, modified_by = $1, updated_at = now()
        WHERE id = $2
    `, modifiedBy, lineID)
	return err
}

func (r *PGRepository) ListLines(ctx context.Context, orderID string) ([]model.OrderLine, error) {
	q := postgres.QuerierFromContext(ctx, r.DB)
	var items []model.OrderLine
	err := q.SelectContext(ctx, &items,
		`SELECT * FROM order_lines WHERE order_id = $1 ORDER BY created_at ASC`, orderID)
	return items, err
}

func (r *PGRepository) SumActiveLines(ctx context.Context, orderID string) (model.OrderTotals, error) {
	q := postgres.QuerierFromContext(ctx, r.DB)
	var totals model.OrderTotals
	err := q.GetContext(ctx, &totals, `
        SELECT
            COALESCE(SUM(subtotal), 0) AS subtotal,
            COALESCE(SUM(discount), 0) AS discount,
            COALESCE(SUM(tax), 0)      AS tax
        FROM order_lines
        WHERE order_id = $1 AND status = true
    `, orderID)
	return totals, err
}

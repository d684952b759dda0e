package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *PGRepository) CreateCustomer(ctx context.Context, c *model.Customer) error {
	q := postgres.QuerierFromContext(ctx, r.DB)
	_, err := sqlx.NamedExecContext(ctx, q, `
        INSERT INTO customers (
            id, status, created_at, updated_at, created_by, modified_by,
            name, last_name, dni, email, phone, address, type_customer, gender
        )
        VALUES (
            :id, :status, :created_at, :updated_at, :created_by, :modified_by,
            :name, :last_name, :dni, :email, :phone, :address, :type_customer, :gender
        )
    `, c)
	return err
}

func (r *PGRepository) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	q := postgres.QuerierFromContext(ctx, r.DB)
	var c model.Customer
	err := q.GetContext(ctx, &c, `SELECT * FROM customers WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGRepository) UpdateCustomer(ctx context.Context, c *model.Customer) error {
	q := postgres.QuerierFromContext(ctx, r.DB)
	_, err := sqlx.NamedExecContext(ctx, q, `
        UPDATE customers SET
            name = :name, last_name = :last_name, dni = :dni, email = :email,
            phone = :phone, address = :address, type_customer = :type_customer,
            gender = :gender, modified_by = :modified_by, updated_at = now()
        WHERE id = :id
    `, c)
	return err
}

func (r *PGRepository) ListCustomers(ctx context.Context, activeOnly bool) ([]model.Customer, error) {
	query := `SELECT * FROM customers`
	if activeOnly {
		query += ` WHERE status = true`
	}
	query += ` ORDER BY name`

	var items []model.Customer
	err := r.DB.SelectContext(ctx, &items, query)
	return items, err
}

func (r *PGRepository) SetCustomerStatus(ctx context.Context, id string, status model.Status, modifiedBy string) error {
	return r.setStatus(ctx, "customers", id, status, modifiedBy)
}

func (r *PGRepository) CreateSupplier(ctx context.Context, s *model.Supplier) error {
	q := postgres.QuerierFromContext(ctx, r.DB)
	_, err := sqlx.NamedExecContext(ctx, q, `
        INSERT INTO suppliers (
            id, status, created_at, updated_at, created_by, modified_by,
            name, contact_person, phone, email, address
        )
        VALUES (
            :id, :status, :created_at, :updated_at, :created_by, :modified_by,
            :name, :contact_person, :phone, :email, :address
        )
    `, s)
	return err
}

func (r *PGRepository) GetSupplier(ctx context.Context, id string) (*model.Supplier, error) {
	q := postgres.QuerierFromContext(ctx, r.DB)
	var s model.Supplier
	err := q.GetContext(ctx, &s, `SELECT * FROM suppliers WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) UpdateSupplier(ctx context.Context, s *model.Supplier) error {
	q := postgres.QuerierFromContext(ctx, r.DB)
	_, err := sqlx.NamedExecContext(ctx, q, `
        UPDATE suppliers SET
            name = :name, contact_person = :contact_person, phone = :phone,
            email = :email, address = :address, modified_by = :modified_by, updated_at = now()
        WHERE id = :id
    `, s)
	return err
}

func (r *PGRepository) ListSuppliers(ctx context.Context, activeOnly bool) ([]model.Supplier, error) {
	query := `SELECT * FROM suppliers`
	if activeOnly {
		query += ` WHERE status = true`
	}
	query += ` ORDER BY name`

	var items []model.Supplier
	err := r.DB.SelectContext(ctx, &items, query)
	return items, err
}

func (r *PGRepository) SetSupplierStatus(ctx context.Context, id string, status model.Status, modifiedBy string) error {
	return r.setStatus(ctx, "suppliers", id, status, modifiedBy)
}

func (r *PGRepository) setStatus(ctx context.Context, table, id string, status model.Status, modifiedBy string) error {
	q := postgres.QuerierFromContext(ctx, r.DB)
	res, err := q.ExecContext(ctx,
		fmt.Sprintf(`UPDATE %s SET status = $1, modified_by = $2, updated_at = now() WHERE id = $3`, table),
		status, modifiedBy, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

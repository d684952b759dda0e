package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/velmora/pos-backoffice/internal/catalog/dto"
	"github.com/velmora/pos-backoffice/internal/model"
	"github.com/velmora/pos-backoffice/pkg/database/postgres"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// --- Products ---

func (r *PGRepository) CreateProduct(ctx context.Context, p *model.Product) error {
	q := postgres.QuerierFromContext(ctx, r.DB)
	_, err := sqlx.NamedExecContext(ctx, q, `
        INSERT INTO products (
            id, status, created_at, updated_at, created_by, modified_by,
            code, barcode, name, description, category_id, brand_id, unit,
            price, stock, last_purchase_price, last_buy_date
        )
        VALUES (
            :id, :status, :created_at, :updated_at, :created_by, :modified_by,
            :code, :barcode, :name, :description, :category_id, :brand_id, :unit,
            :price, :stock, :last_purchase_price, :last_buy_date
        )
    `, p)
	return err
}

func (r *PGRepository) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	q := postgres.QuerierFromContext(ctx, r.DB)
	var p model.Product
	err := q.GetContext(ctx, &p, `SELECT * FROM products WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) UpdateProduct(ctx context.Context, p *model.Product) error {
	q := postgres.QuerierFromContext(ctx, r.DB)
	_, err := sqlx.NamedExecContext(ctx, q, `
        UPDATE products SET
            code = :code, barcode = :barcode, name = :name, description = :description,
            category_id = :category_id, brand_id = :brand_id, unit = :unit,
            price = :price, modified_by = :modified_by, updated_at = now()
        WHERE id = :id
    `, p)
	return err
}

func (r *PGRepository) ListProducts(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.Name != "" {
		conditions = append(conditions, "name ILIKE :name")
		args["name"] = "%" + f.Name + "%"
	}
	if f.ActiveOnly {
		conditions = append(conditions, "status = true")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	rows, err := r.DB.NamedQueryContext(ctx, "SELECT count(*) FROM products"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return nil, 0, err
		}
	}

	query := "SELECT * FROM products" + whereClause + " ORDER BY name"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	var items []model.Product
	err = nstmt.SelectContext(ctx, &items, args)
	return items, count, err
}

func (r *PGRepository) SetProductStatus(ctx context.Context, id string, status model.Status, modifiedBy string) error {
	return r.setStatus(ctx, "products", id, status, modifiedBy)
}

// --- Categories ---

func (r *PGRepository) CreateCategory(ctx context.Context, c *model.Category) error {
	q := postgres.QuerierFromContext(ctx, r.DB)
	_, err := sqlx.NamedExecContext(ctx, q, `
        INSERT INTO categories (
            id, status, created_at, updated_at, created_by, modified_by,
            parent_id, name, description
        )
        VALUES (
            :id, :status, :created_at, :updated_at, :created_by, :modified_by,
            :parent_id, :name, :description
        )
    `, c)
	return err
}

func (r *PGRepository) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	err := r.DB.GetContext(ctx, &c, `SELECT * FROM categories WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	var items []model.Category
	err := r.DB.SelectContext(ctx, &items, `SELECT * FROM categories ORDER BY name`)
	return items, err
}

func (r *PGRepository) SetCategoryStatus(ctx context.Context, id string, status model.Status, modifiedBy string) error {
	return r.setStatus(ctx, "categories", id, status, modifiedBy)
}

// --- Brands ---

func (r *PGRepository) CreateBrand(ctx context.Context, b *model.Brand) error {
	q := postgres.QuerierFromContext(ctx, r.DB)
	_, err := sqlx.NamedExecContext(ctx, q, `
        INSERT INTO brands (
            id, status, created_at, updated_at, created_by, modified_by, name, description
        )
        VALUES (
            :id, :status, :created_at, :updated_at, :created_by, :modified_by, :name, :description
        )
    `, b)
	return err
}

func (r *PGRepository) GetBrand(ctx context.Context, id string) (*model.Brand, error) {
	var b model.Brand
	err := r.DB.GetContext(ctx, &b, `SELECT * FROM brands WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGRepository) ListBrands(ctx context.Context) ([]model.Brand, error) {
	var items []model.Brand
	err := r.DB.SelectContext(ctx, &items, `SELECT * FROM brands ORDER BY name`)
	return items, err
}

func (r *PGRepository) SetBrandStatus(ctx context.Context, id string, status model.Status, modifiedBy string) error {
	return r.setStatus(ctx, "brands", id, status, modifiedBy)
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

package dto

import "github.com/shopspring/decimal"

type CreateProductInput struct {
	Code        string          `json:"code" binding:"required"`
	Barcode     string          `json:"barcode"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	CategoryID  string          `json:"category_id"`
	BrandID     string          `json:"brand_id"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
}

type UpdateProductInput struct {
	ID          string          `json:"-"`
	Code        string          `json:"code" binding:"required"`
	Barcode     string          `json:"barcode"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	CategoryID  string          `json:"category_id"`
	BrandID     string          `json:"brand_id"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
}

type ProductFilters struct {
	Name       string `form:"name"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ParentID    string `json:"parent_id"`
}

type CreateBrandInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	BaseModel
	ParentID    *string `db:"parent_id" json:"parent_id"` // Nullable, subcategories point at their parent
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
}

// Normalize canonicalizes the name to uppercase before persisting.
func (c *Category) Normalize() {
	c.Name = strings.ToUpper(strings.TrimSpace(c.Name))
}

type Brand struct {
	BaseModel
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
}

func (b *Brand) Normalize() {
	b.Name = strings.ToUpper(strings.TrimSpace(b.Name))
}

type Product struct {
	BaseModel
	Code              string          `db:"code" json:"code"`
	Barcode           *string         `db:"barcode" json:"barcode"` // Nullable
	Name              string          `db:"name" json:"name"`
	Description       *string         `db:"description" json:"description"`
	CategoryID        *string         `db:"category_id" json:"category_id"`
	BrandID           *string         `db:"brand_id" json:"brand_id"`
	Unit              string          `db:"unit" json:"unit"`
	Price             decimal.Decimal `db:"price" json:"price"`
	Stock             int64           `db:"stock" json:"stock"`
	LastPurchasePrice decimal.Decimal `db:"last_purchase_price" json:"last_purchase_price"`
	LastBuyDate       *time.Time      `db:"last_buy_date" json:"last_buy_date"`
}

func (p *Product) Normalize() {
	p.Name = strings.ToUpper(strings.TrimSpace(p.Name))
	p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
}

package catalog

import (
	"context"

	"github.com/velmora/pos-backoffice/internal/catalog/dto"
	"github.com/velmora/pos-backoffice/internal/model"
)

// Repository is the catalog persistence surface. Get methods return (nil, nil)
// when no row matches; the usecase decides whether that is an error.
type Repository interface {
	CreateProduct(ctx context.Context, p *model.Product) error
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	UpdateProduct(ctx context.Context, p *model.Product) error
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	SetProductStatus(ctx context.Context, id string, status model.Status, modifiedBy string) error

	CreateCategory(ctx context.Context, c *model.Category) error
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	SetCategoryStatus(ctx context.Context, id string, status model.Status, modifiedBy string) error

	CreateBrand(ctx context.Context, b *model.Brand) error
	GetBrand(ctx context.Context, id string) (*model.Brand, error)
	ListBrands(ctx context.Context) ([]model.Brand, error)
	SetBrandStatus(ctx context.Context, id string, status model.Status, modifiedBy string) error
}

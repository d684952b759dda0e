package catalog

import (
	"context"

	"github.com/velmora/pos-backoffice/internal/catalog/dto"
	"github.com/velmora/pos-backoffice/internal/model"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	ToggleProductStatus(ctx context.Context, id string) (model.Status, error)

	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	ToggleCategoryStatus(ctx context.Context, id string) (model.Status, error)

	CreateBrand(ctx context.Context, input *dto.CreateBrandInput) (*model.Brand, error)
	ListBrands(ctx context.Context) ([]model.Brand, error)
	ToggleBrandStatus(ctx context.Context, id string) (model.Status, error)
}

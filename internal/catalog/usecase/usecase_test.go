package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/velmora/pos-backoffice/internal/apperr"
	"github.com/velmora/pos-backoffice/internal/catalog"
	"github.com/velmora/pos-backoffice/internal/catalog/dto"
	"github.com/velmora/pos-backoffice/internal/model"
)

type memRepo struct {
	products   map[string]*model.Product
	categories map[string]*model.Category
	brands     map[string]*model.Brand
}

func newMemRepo() *memRepo {
	return &memRepo{
		products:   make(map[string]*model.Product),
		categories: make(map[string]*model.Category),
		brands:     make(map[string]*model.Brand),
	}
}

func (r *memRepo) CreateProduct(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memRepo) GetProduct(_ context.Context, id string) (*model.Product, error) {
	return r.products[id], nil
}

func (r *memRepo) UpdateProduct(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memRepo) ListProducts(_ context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	var items []model.Product
	for _, p := range r.products {
		if f.ActiveOnly && !p.Status.Active() {
			continue
		}
		items = append(items, *p)
	}
	return items, len(items), nil
}

func (r *memRepo) SetProductStatus(_ context.Context, id string, status model.Status, _ string) error {
	r.products[id].Status = status
	return nil
}

func (r *memRepo) CreateCategory(_ context.Context, c *model.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *memRepo) GetCategory(_ context.Context, id string) (*model.Category, error) {
	return r.categories[id], nil
}

func (r *memRepo) ListCategories(_ context.Context) ([]model.Category, error) {
	var items []model.Category
	for _, c := range r.categories {
		items = append(items, *c)
	}
	return items, nil
}

func (r *memRepo) SetCategoryStatus(_ context.Context, id string, status model.Status, _ string) error {
	r.categories[id].Status = status
	return nil
}

func (r *memRepo) CreateBrand(_ context.Context, b *model.Brand) error {
	r.brands[b.ID] = b
	return nil
}

func (r *memRepo) GetBrand(_ context.Context, id string) (*model.Brand, error) {
	return r.brands[id], nil
}

func (r *memRepo) ListBrands(_ context.Context) ([]model.Brand, error) {
	var items []model.Brand
	for _, b := range r.brands {
		items = append(items, *b)
	}
	return items, nil
}

func (r *memRepo) SetBrandStatus(_ context.Context, id string, status model.Status, _ string) error {
	r.brands[id].Status = status
	return nil
}

func setup(t *testing.T) (catalog.UseCase, *memRepo) {
	t.Helper()
	repo := newMemRepo()
	return NewCatalogUseCase(repo, nil, zap.NewNop()), repo
}

func TestCreateProductNormalizes(t *testing.T) {
	uc, _ := setup(t)

	p, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Code:  "p-001",
		Name:  " cola 500ml ",
		Unit:  "unit",
		Price: decimal.RequireFromString("2.499"),
		Stock: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "COLA 500ML", p.Name)
	assert.Equal(t, "P-001", p.Code)
	assert.Equal(t, "2.50", p.Price.StringFixed(2))
	assert.Equal(t, model.StatusActive, p.Status)
}

func TestCreateProductRejectsNegatives(t *testing.T) {
	uc, _ := setup(t)

	_, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Code: "P1", Name: "X", Price: decimal.RequireFromString("-1"),
	})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Code: "P1", Name: "X", Stock: -5,
	})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestToggleProductStatus(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Code: "P1", Name: "X"})
	require.NoError(t, err)

	next, err := uc.ToggleProductStatus(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusVoided, next)

	next, err = uc.ToggleProductStatus(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, next)

	_, err = uc.ToggleProductStatus(ctx, "missing")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCreateCategoryWithParent(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()

	parent, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "drinks"})
	require.NoError(t, err)
	assert.Equal(t, "DRINKS", parent.Name)

	child, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "sodas", ParentID: parent.ID})
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, parent.ID, *child.ParentID)

	_, err = uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "orphan", ParentID: "missing"})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestGetProductNotFound(t *testing.T) {
	uc, _ := setup(t)
	_, err := uc.GetProduct(context.Background(), "missing")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

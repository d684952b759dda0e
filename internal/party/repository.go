package party

import (
	"context"

	"github.com/velmora/pos-backoffice/internal/model"
)

// Repository persists the counterparties of an order: customers for sales,
// suppliers for purchases. Get methods return (nil, nil) when no row matches.
type Repository interface {
	CreateCustomer(ctx context.Context, c *model.Customer) error
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, c *model.Customer) error
	ListCustomers(ctx context.Context, activeOnly bool) ([]model.Customer, error)
	SetCustomerStatus(ctx context.Context, id string, status model.Status, modifiedBy string) error

	CreateSupplier(ctx context.Context, s *model.Supplier) error
	GetSupplier(ctx context.Context, id string) (*model.Supplier, error)
	UpdateSupplier(ctx context.Context, s *model.Supplier) error
	ListSuppliers(ctx context.Context, activeOnly bool) ([]model.Supplier, error)
	SetSupplierStatus(ctx context.Context, id string, status model.Status, modifiedBy string) error
}

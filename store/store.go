// Package store is the persistence boundary. Services are coded against the
// interfaces here; the gorm implementation lives in gorm.go and test doubles
// implement the same contracts.
package store

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Ibrahimvain/pesan-aja/models"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogReader resolves the current committed unit price of a product. The
// order transaction uses the Tx-scoped reader so a concurrent price change
// cannot be observed mid-commit.
type CatalogReader interface {
	PriceOf(ctx context.Context, productID uint) (decimal.Decimal, error)
}

// OrderWriter persists the pieces of an order inside one transaction.
type OrderWriter interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	AddItem(ctx context.Context, item *models.OrderItem) error
	SetOrderTotal(ctx context.Context, orderID uint, total decimal.Decimal) error
}

// Tx is one unit of work: every read and write through it either commits as
// a whole or rolls back as a whole.
type Tx interface {
	CatalogReader
	OrderWriter
	Commit() error
	Rollback() error
}

// UnitOfWork begins transactions. Any storage engine with read-committed
// isolation or better can back it.
type UnitOfWork interface {
	Begin(ctx context.Context) (Tx, error)
}

// Catalog is the product/category surface used by catalog management.
type Catalog interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	SaveProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
}

// OrderBrowser reads committed orders for the admin listing.
type OrderBrowser interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
}

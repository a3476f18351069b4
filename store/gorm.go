package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Ibrahimvain/pesan-aja/models"
)

// GormStore implements UnitOfWork, CatalogReader, Catalog and OrderBrowser
// over a gorm handle.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Begin(ctx context.Context) (Tx, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin transaction: %w", tx.Error)
	}
	return &gormTx{db: tx}, nil
}

func (s *GormStore) PriceOf(ctx context.Context, productID uint) (decimal.Decimal, error) {
	return priceOf(s.db.WithContext(ctx), productID)
}

func (s *GormStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).Order("id DESC").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *GormStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *GormStore) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &product, nil
}

func (s *GormStore) CreateProduct(ctx context.Context, p *models.Product) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (s *GormStore) SaveProduct(ctx context.Context, p *models.Product) error {
	if err := s.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("save product %d: %w", p.Id, err)
	}
	return nil
}

// DeleteProduct removes a product together with the order items that
// reference it, in one transaction so neither can go missing alone.
func (s *GormStore) DeleteProduct(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("delete order items of product %d: %w", id, err)
		}
		res := tx.Delete(&models.Product{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete product %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrProductNotFound
		}
		return nil
	})
}

func (s *GormStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Preload("Items").Order("id DESC").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// gormTx is the transaction-scoped view. All reads and writes run on the
// same underlying tx handle.
type gormTx struct {
	db   *gorm.DB
	done bool
}

func (t *gormTx) PriceOf(ctx context.Context, productID uint) (decimal.Decimal, error) {
	return priceOf(t.db.WithContext(ctx), productID)
}

func (t *gormTx) CreateOrder(ctx context.Context, order *models.Order) error {
	if err := t.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (t *gormTx) AddItem(ctx context.Context, item *models.OrderItem) error {
	if err := t.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("create order item: %w", err)
	}
	return nil
}

func (t *gormTx) SetOrderTotal(ctx context.Context, orderID uint, total decimal.Decimal) error {
	err := t.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("total_amount", total).Error
	if err != nil {
		return fmt.Errorf("set order %d total: %w", orderID, err)
	}
	return nil
}

func (t *gormTx) Commit() error {
	if t.done {
		return nil
	}
	t.done = true
	if err := t.db.Commit().Error; err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (t *gormTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	return t.db.Rollback().Error
}

func priceOf(db *gorm.DB, productID uint) (decimal.Decimal, error) {
	var product models.Product
	err := db.Select("id", "price").First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, ErrProductNotFound
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("read price of product %d: %w", productID, err)
	}
	return product.Price, nil
}

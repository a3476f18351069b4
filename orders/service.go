// Package orders implements the order commit: one atomic unit of work that
// creates the order shell, snapshots every line's price, persists the items
// and finalizes the total.
package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Ibrahimvain/pesan-aja/models"
	"github.com/Ibrahimvain/pesan-aja/store"
)

var (
	ErrEmptyOrder  = errors.New("order must contain at least one item")
	ErrBadQuantity = errors.New("item quantity must be positive")
)

// ProductNotFoundError aborts the transaction and names the product the
// caller asked for but the catalog does not have.
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

type LineItem struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type PlaceRequest struct {
	CustomerName string     `json:"customerName" binding:"required"`
	Address      string     `json:"address" binding:"required"`
	Items        []LineItem `json:"items"`
}

type Service struct {
	uow     store.UnitOfWork
	browser store.OrderBrowser
	log     *zap.Logger
}

func NewService(uow store.UnitOfWork, browser store.OrderBrowser, log *zap.Logger) *Service {
	return &Service{uow: uow, browser: browser, log: log}
}

// Place runs the order transaction and returns the new order id, which only
// exists once the commit succeeded. Any failure between Begin and Commit
// rolls the whole order back; no shell row or partial item set survives.
func (s *Service) Place(ctx context.Context, req PlaceRequest) (uint, error) {
	if len(req.Items) == 0 {
		return 0, ErrEmptyOrder
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return 0, fmt.Errorf("product %d: %w", item.ProductID, ErrBadQuantity)
		}
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() // no-op once committed

	order := &models.Order{
		CustomerName: req.CustomerName,
		Address:      req.Address,
		TotalAmount:  decimal.Zero,
		Status:       models.OrderStatusPending,
	}
	if err := tx.CreateOrder(ctx, order); err != nil {
		return 0, err
	}

	total := decimal.Zero
	for _, item := range req.Items {
		price, err := tx.PriceOf(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				return 0, &ProductNotFoundError{ProductID: item.ProductID}
			}
			return 0, err
		}

		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))

		if err := tx.AddItem(ctx, &models.OrderItem{
			OrderID:     order.Id,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			PriceAtTime: price,
		}); err != nil {
			return 0, err
		}
	}

	if err := tx.SetOrderTotal(ctx, order.Id, total); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}

	s.log.Info("order placed",
		zap.Uint("order_id", order.Id),
		zap.Int("items", len(req.Items)),
		zap.String("total", total.StringFixed(2)),
	)
	return order.Id, nil
}

// List returns committed orders with their items, newest first.
func (s *Service) List(ctx context.Context) ([]models.Order, error) {
	return s.browser.ListOrders(ctx)
}

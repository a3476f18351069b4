package orders

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Ibrahimvain/pesan-aja/models"
	"github.com/Ibrahimvain/pesan-aja/store"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Order{}, &models.OrderItem{}))

	gormStore := store.NewGormStore(db)
	return NewService(gormStore, gormStore, zap.NewNop()), db
}

func seedProduct(t *testing.T, db *gorm.DB, id uint, price string) {
	t.Helper()
	p, err := decimal.NewFromString(price)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Product{Id: id, Name: "p", Price: p, Stock: 100}).Error)
}

func TestPlaceComputesTotalFromSnapshots(t *testing.T) {
	svc, db := newTestService(t)
	seedProduct(t, db, 5, "10.00")
	seedProduct(t, db, 9, "3.50")

	orderID, err := svc.Place(context.Background(), PlaceRequest{
		CustomerName: "Budi",
		Address:      "Jl. Kenanga 12",
		Items: []LineItem{
			{ProductID: 5, Quantity: 2},
			{ProductID: 9, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, orderID)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, orderID).Error)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("23.50")),
		"total = %s", order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	require.Len(t, order.Items, 2)
	// Items are persisted in input order.
	assert.Equal(t, uint(5), order.Items[0].ProductID)
	assert.True(t, order.Items[0].PriceAtTime.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, uint(9), order.Items[1].ProductID)
	assert.True(t, order.Items[1].PriceAtTime.Equal(decimal.RequireFromString("3.50")))
	assert.Equal(t, 1, order.Items[1].Quantity)
}

func TestPlaceUnknownProductRollsBackEverything(t *testing.T) {
	svc, db := newTestService(t)
	seedProduct(t, db, 5, "10.00")

	orderID, err := svc.Place(context.Background(), PlaceRequest{
		CustomerName: "Budi",
		Address:      "Jl. Kenanga 12",
		Items: []LineItem{
			{ProductID: 5, Quantity: 2},
			{ProductID: 9, Quantity: 1}, // never seeded
		},
	})
	assert.Zero(t, orderID)

	var notFound *ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint(9), notFound.ProductID)
	assert.Contains(t, err.Error(), "product 9")

	// Full rollback: not even the order shell or the first line survives.
	var orderCount, itemCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestSnapshotSurvivesLaterPriceChange(t *testing.T) {
	svc, db := newTestService(t)
	seedProduct(t, db, 5, "10.00")

	orderID, err := svc.Place(context.Background(), PlaceRequest{
		CustomerName: "Budi",
		Address:      "Jl. Kenanga 12",
		Items:        []LineItem{{ProductID: 5, Quantity: 3}},
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", 5).
		Update("price", decimal.RequireFromString("99.99")).Error)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, orderID).Error)
	assert.True(t, order.Items[0].PriceAtTime.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("30.00")))
}

func TestPlaceRejectsEmptyOrder(t *testing.T) {
	svc, _ := newTestService(t)

	orderID, err := svc.Place(context.Background(), PlaceRequest{
		CustomerName: "Budi",
		Address:      "Jl. Kenanga 12",
	})
	assert.Zero(t, orderID)
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestPlaceRejectsNonPositiveQuantity(t *testing.T) {
	svc, db := newTestService(t)
	seedProduct(t, db, 5, "10.00")

	for _, qty := range []int{0, -3} {
		orderID, err := svc.Place(context.Background(), PlaceRequest{
			CustomerName: "Budi",
			Address:      "Jl. Kenanga 12",
			Items:        []LineItem{{ProductID: 5, Quantity: qty}},
		})
		assert.Zero(t, orderID)
		assert.ErrorIs(t, err, ErrBadQuantity)
	}

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
}

package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Ibrahimvain/pesan-aja/models"
	"github.com/Ibrahimvain/pesan-aja/orders"
	"github.com/Ibrahimvain/pesan-aja/store"
)

func newOrderRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Order{}, &models.OrderItem{}))

	gormStore := store.NewGormStore(db)
	ct := NewOrderController(orders.NewService(gormStore, gormStore, zap.NewNop()), zap.NewNop())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/orders", ct.PlaceOrder)
	return router, db
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestPlaceOrderSuccess(t *testing.T) {
	router, db := newOrderRouter(t)
	require.NoError(t, db.Create(&models.Product{Id: 5, Name: "Kopi", Price: decimal.RequireFromString("10.00")}).Error)
	require.NoError(t, db.Create(&models.Product{Id: 9, Name: "Teh", Price: decimal.RequireFromString("3.50")}).Error)

	w := postJSON(router, "/api/orders", `{
		"customerName": "Budi",
		"address": "Jl. Kenanga 12",
		"items": [{"productId": 5, "quantity": 2}, {"productId": 9, "quantity": 1}]
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"orderId"`)

	var order models.Order
	require.NoError(t, db.First(&order).Error)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("23.50")))
}

func TestPlaceOrderUnknownProduct(t *testing.T) {
	router, db := newOrderRouter(t)
	require.NoError(t, db.Create(&models.Product{Id: 5, Name: "Kopi", Price: decimal.RequireFromString("10.00")}).Error)

	w := postJSON(router, "/api/orders", `{
		"customerName": "Budi",
		"address": "Jl. Kenanga 12",
		"items": [{"productId": 5, "quantity": 2}, {"productId": 9, "quantity": 1}]
	}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "product 9 not found")

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
}

func TestPlaceOrderMalformedBody(t *testing.T) {
	router, _ := newOrderRouter(t)

	w := postJSON(router, "/api/orders", `{"customerName": "Budi"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderEmptyItems(t *testing.T) {
	router, _ := newOrderRouter(t)

	w := postJSON(router, "/api/orders", `{"customerName": "Budi", "address": "x", "items": []}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at least one item")
}

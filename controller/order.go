package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ibrahimvain/pesan-aja/orders"
)

type OrderController struct {
	orders *orders.Service
	log    *zap.Logger
}

func NewOrderController(svc *orders.Service, log *zap.Logger) *OrderController {
	return &OrderController{orders: svc, log: log}
}

// PlaceOrder is deliberately public: the storefront lets anyone order, only
// catalog management sits behind the auth gate.
func (ct *OrderController) PlaceOrder(c *gin.Context) {
	var req orders.PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	orderID, err := ct.orders.Place(c.Request.Context(), req)
	if err != nil {
		var notFound *orders.ProductNotFoundError
		switch {
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": notFound.Error()})
		case errors.Is(err, orders.ErrEmptyOrder), errors.Is(err, orders.ErrBadQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		default:
			ct.log.Error("place order failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not place order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orderId": orderID})
}

// ListOrders is the admin view of committed orders with their items.
func (ct *OrderController) ListOrders(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	list, err := ct.orders.List(c.Request.Context())
	if err != nil {
		ct.log.Error("list orders failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not fetch orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/Ibrahimvain/pesan-aja/auth"
	"github.com/Ibrahimvain/pesan-aja/controller"
	"github.com/Ibrahimvain/pesan-aja/middleware"
)

type Handlers struct {
	Auth     *controller.AuthController
	Products *controller.ProductController
	Orders   *controller.OrderController
}

// Register wires all routes. Login and order placement are public; every
// catalog mutation and the order listing sit behind RequireAuth.
func Register(router *gin.Engine, h Handlers, tokens *auth.TokenService, cache *redis.Client) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.POST("/login", middleware.RateLimiter(cache), h.Auth.Login)
	api.GET("/products", h.Products.GetProducts)
	api.POST("/orders", h.Orders.PlaceOrder)

	authorized := api.Group("/")
	authorized.Use(middleware.RequireAuth(tokens))
	{
		authorized.POST("/products", h.Products.CreateProduct)
		authorized.PUT("/products/:id", h.Products.UpdateProduct)
		authorized.DELETE("/products/:id", h.Products.DeleteProduct)
		authorized.GET("/orders", h.Orders.ListOrders)
	}
}

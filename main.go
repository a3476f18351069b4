package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ibrahimvain/pesan-aja/auth"
	"github.com/Ibrahimvain/pesan-aja/catalog"
	"github.com/Ibrahimvain/pesan-aja/config"
	"github.com/Ibrahimvain/pesan-aja/controller"
	"github.com/Ibrahimvain/pesan-aja/middleware"
	"github.com/Ibrahimvain/pesan-aja/orders"
	"github.com/Ibrahimvain/pesan-aja/routes"
	"github.com/Ibrahimvain/pesan-aja/storage"
	"github.com/Ibrahimvain/pesan-aja/store"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}

	db, err := config.Connect(cfg.DB)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}

	cache, err := config.ConnectRedis(cfg.Redis)
	if err != nil {
		log.Warn("redis unreachable, caching disabled", zap.Error(err))
		cache = nil
	}

	var objects storage.ObjectStore
	if cfg.Storage.Endpoint != "" {
		s3, err := storage.NewS3Store(cfg.Storage)
		if err != nil {
			log.Fatal("object storage", zap.Error(err))
		}
		objects = s3
	} else {
		log.Warn("no object storage configured, image uploads disabled")
	}

	gormStore := store.NewGormStore(db)
	tokens := auth.NewTokenService([]byte(cfg.JWTSecret))
	creds := auth.NewCredentialStore(db)
	catalogSvc := catalog.NewService(gormStore, cache, objects, log)
	orderSvc := orders.NewService(gormStore, gormStore, log)

	handlers := routes.Handlers{
		Auth:     controller.NewAuthController(creds, tokens, log),
		Products: controller.NewProductController(catalogSvc, log),
		Orders:   controller.NewOrderController(orderSvc, log),
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.NewMetrics().Handler())
	routes.Register(router, handlers, tokens, cache)

	log.Info("listening", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}

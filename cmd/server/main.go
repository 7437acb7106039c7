package main

import (
	"log"
	"net/http"

	"threadline-be/internal/api"
	"threadline-be/internal/cart"
	"threadline-be/internal/config"
	"threadline-be/internal/db"
	"threadline-be/internal/logger"
	"threadline-be/internal/order"
	"threadline-be/internal/product"
	"threadline-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	rdb := db.InitRedis(cfg)
	defer rdb.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	cartStore := cart.NewStore(rdb)
	cartSvc := cart.NewService(cartStore, productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, cartStore)

	router := api.NewRouter(api.Handlers{
		Auth:    api.NewAuthHandler(userSvc),
		Product: api.NewProductHandler(productSvc),
		Cart:    api.NewCartHandler(cartSvc),
		Order:   api.NewOrderHandler(orderSvc),
	})

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}

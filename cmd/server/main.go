package main

import (
	"context"
	"net/http"

	"legitlah-be/internal/auth"
	"legitlah-be/internal/cart"
	"legitlah-be/internal/chain"
	"legitlah-be/internal/config"
	"legitlah-be/internal/db"
	"legitlah-be/internal/httpserver"
	"legitlah-be/internal/listing"
	"legitlah-be/internal/logger"
	"legitlah-be/internal/metrics"
	"legitlah-be/internal/order"
	"legitlah-be/internal/session"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	stats := &metrics.GatewayStats{}
	users := chain.NewHTTPGateway(cfg.ChainRPCURL, cfg.UserRegistry, cfg.GatewayTimeout, stats)
	orders := chain.NewHTTPGateway(cfg.ChainRPCURL, cfg.OrderContract, cfg.GatewayTimeout, stats)
	var sellers chain.Gateway
	if cfg.SellerContract != "" {
		sellers = chain.NewHTTPGateway(cfg.ChainRPCURL, cfg.SellerContract, cfg.GatewayTimeout, stats)
	}
	registry := chain.NewRegistry(users, orders, sellers, stats)

	sessions := session.NewStore()
	carts := cart.NewStore()

	deps := httpserver.Deps{
		Gate:    auth.NewGate(sessions),
		AuthSvc: auth.NewService(sessions, registry),
		Carts:   carts,
		Orders:  order.NewService(carts, registry, cfg.GatewayTimeout),
		Admin:   registry,
	}

	if cfg.ListingEnabled() {
		database := db.InitDB(cfg)
		defer database.Close()

		repo := listing.NewRepository(database)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			logger.L().Fatal("listing schema init failed", zap.Error(err))
		}
		deps.Listings = listing.NewService(repo)
	}

	router := httpserver.NewRouter(deps)

	logger.L().Info("server listening",
		zap.String("port", cfg.AppPort),
		zap.Bool("listings", cfg.ListingEnabled()),
	)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

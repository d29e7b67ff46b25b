package app

import (
	"context"

	"go.uber.org/zap"

	appconfig "voltedge/internal/config"
	"voltedge/internal/events"
	httpserver "voltedge/internal/http"
	"voltedge/internal/http/handlers"
	"voltedge/internal/http/middleware"
	"voltedge/internal/password"
	"voltedge/internal/registry"
	"voltedge/internal/service"
	"voltedge/internal/ws"
)

// App wires dependencies for the charging network service.
type App struct {
	server *httpserver.Server
	logger *zap.Logger
}

// New builds application graph.
func New(cfg *appconfig.Config, logger *zap.Logger) (*App, error) {
	reg := registry.New()
	hub := events.NewHub()

	hasher := password.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokenSvc := service.NewTokenService(cfg.Auth.JWTSecret, cfg.TokenTTL())
	authSvc := service.NewAuthService(reg, hasher, tokenSvc, cfg.Billing.StartingBalance, logger)
	chargingSvc := service.NewChargingService(reg, hub, logger)
	maintenanceSvc := service.NewMaintenanceService(reg, logger)

	feed := ws.NewFeed(hub, logger)

	deps := httpserver.RouterDeps{
		AuthHandlers:        handlers.NewAuthHandlers(authSvc, logger),
		UserHandlers:        handlers.NewUserHandlers(authSvc, chargingSvc, logger),
		StationHandlers:     handlers.NewStationHandlers(chargingSvc, logger),
		SessionHandlers:     handlers.NewSessionHandlers(chargingSvc, logger),
		MaintenanceHandlers: handlers.NewMaintenanceHandlers(maintenanceSvc, logger),
		HealthHandler:       handlers.NewHealthHandler(),
		StatusFeed:          feed.HandleWS,
	}

	router := httpserver.NewRouter(deps, middleware.Auth(tokenSvc, authSvc))
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server: server,
		logger: logger,
	}, nil
}

// Run starts serving HTTP traffic until context cancellation.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

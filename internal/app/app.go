package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ewizz-console/internal/backend"
	"ewizz-console/internal/chat"
	"ewizz-console/internal/config"
	"ewizz-console/internal/handlers"
	"ewizz-console/internal/logger"
	"ewizz-console/internal/session"
	"ewizz-console/internal/web"
)

type App struct {
	cfg    *config.Config
	api    *backend.Client
	store  *session.Store
	chat   *chat.Store
	server *http.Server
}

func New() *App {
	return &App{}
}

func (a *App) Initialize(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger.SetLevel(logger.ParseLevel(cfg.Log.Level))

	store, err := session.Open(cfg.Session.DBPath)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	a.store = store

	a.api = backend.NewClient(cfg.Backend.BaseURL)
	a.chat = chat.NewStore()
	return nil
}

func (a *App) Start() error {
	// seed demo data, fire and forget: a failure must never block startup
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := a.api.Init(ctx); err != nil {
			logger.Warn("demo data init: %v", err)
		}
	}()

	router := web.SetupRouter(
		a.store,
		handlers.NewAuthHandler(a.api, a.store),
		handlers.NewDashboardHandler(a.api, a.chat),
		handlers.NewApplianceHandler(a.api),
		handlers.NewChatHandler(a.api, a.chat),
		handlers.NewAdminHandler(a.api),
	)

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	a.server = &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error: %v", err)
		}
	}()

	logger.Info("E-WIZZ console listening on %s (backend %s)", addr, a.cfg.Backend.BaseURL)
	return nil
}

func (a *App) Stop(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

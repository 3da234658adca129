package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"smm-order-desk/internal/api"
	"smm-order-desk/internal/catalog"
	"smm-order-desk/internal/configurator"
	"smm-order-desk/internal/order"
	"smm-order-desk/internal/pkg"
	"smm-order-desk/internal/pkg/config"
	"smm-order-desk/internal/session"
	"smm-order-desk/internal/telegram"
	"smm-order-desk/internal/web"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	bolt "go.etcd.io/bbolt"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	_ = godotenv.Load()
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	db, err := bolt.Open(cfg.Drafts.Path, 0o600, nil)
	if err != nil {
		log.Fatal(err)
	}

	draftStore, err := order.NewBoltDraftStore(db)
	if err != nil {
		log.Fatal(err)
	}

	httpClient := pkg.NewHTTPClient(cfg.Panel.RequestTimeout())
	apiClient := api.NewDefaultClient(cfg.Panel.BaseURL, httpClient)
	catalogRepo := catalog.NewDefaultRepository(apiClient)
	sessionProvider := session.NewAPIProvider(apiClient)

	engines := configurator.NewManager(func(userID int64, token string) *configurator.Engine {
		return configurator.NewEngine(configurator.Deps{
			Catalog:   catalogRepo,
			Drafts:    draftStore,
			Sessions:  sessionProvider,
			Submitter: apiClient,
			Navigator: configurator.SlogNavigator{},
			Token:     token,
			UserID:    userID,
			Locales:   cfg.Locales.Supported,
			Locale:    cfg.Locales.Default,
		})
	})

	server := web.NewServer(engines, catalogRepo, sessionProvider, cfg)
	server.Start()

	if cfg.Telegram.Token != "" {
		tgBot, err := telegram.NewBot(engines, catalogRepo, sessionProvider, &cfg.Telegram)
		if err != nil {
			log.Fatal(err)
		}
		tgBot.Start(ctx)
	}

	<-ctx.Done()
	slog.Info("Shutting down...")
	shutdownCtx, shutdown := context.WithTimeout(context.Background(), time.Second*15)
	defer shutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
	if err := db.Close(); err != nil {
		log.Fatal(err)
	}
}

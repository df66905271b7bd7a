package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/craftbar/mixology/internal/httpapi/handlers"
	"github.com/craftbar/mixology/internal/httpapi/server"
	"github.com/craftbar/mixology/pkg/cache"
	"github.com/craftbar/mixology/pkg/cache/inmemory"
	"github.com/craftbar/mixology/pkg/cache/redis"
	"github.com/craftbar/mixology/pkg/config"
	"github.com/craftbar/mixology/pkg/service/account"
	"github.com/craftbar/mixology/pkg/service/catalog"
	"github.com/craftbar/mixology/pkg/service/search"
	"github.com/craftbar/mixology/pkg/store"
)

func main() {
	configPath := flag.String("config", "config/app.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	setupLogging(cfg)

	ctx := context.Background()
	c, err := newCache(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize cache")
	}

	dataStore := store.New(ctx, c, cfg.Storage.CocktailsPath(), cfg.Storage.UsersPath())

	h := handlers.NewHandlers(cfg,
		catalog.New(dataStore.Cocktail),
		search.New(dataStore.Cocktail),
		account.New(dataStore.User, dataStore.Rating),
	)

	if err := server.NewAPIServer(cfg, h).Start(); err != nil {
		logrus.WithError(err).Fatal("server exited with error")
	}
}

func setupLogging(cfg *config.AppConfig) {
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func newCache(ctx context.Context, cfg *config.AppConfig) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case "redis":
		return redis.NewCache(ctx, &cfg.Cache.Redis)
	default:
		return inmemory.NewCache(&cfg.Cache.InMemory)
	}
}

package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/mrmohdriyas/digital-wellness/internal"
	"github.com/mrmohdriyas/digital-wellness/internal/api"
	"github.com/mrmohdriyas/digital-wellness/internal/config"
	"github.com/mrmohdriyas/digital-wellness/internal/session"
	"github.com/mrmohdriyas/digital-wellness/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	var lister storage.CollectionLister
	var docs storage.DocumentInserter
	switch cfg.StorageType {
	case "mongo":
		lister, docs, err = storage.NewMongoRepositories(cfg.MongoURI, cfg.Database, logger)
	case "postgres":
		lister, docs, err = storage.NewPostgresRepositories(cfg.PostgresDSN, logger)
	case "file":
		if dir := filepath.Dir(cfg.DataFile); dir != "." {
			if _, statErr := os.Stat(dir); os.IsNotExist(statErr) {
				_ = os.MkdirAll(dir, 0755)
			}
		}
		lister, docs, err = storage.NewFileRepositories(cfg.DataFile, logger)
	}
	if err != nil {
		logger.Fatalf("failed to init %s storage: %v", cfg.StorageType, err)
	}

	app := api.NewServer(logger, session.NewStore(), lister, docs)
	r := api.NewRouter(app)

	logger.Infof("Server running on %s (storage=%s, database=%s)", cfg.ListenAddr, cfg.StorageType, cfg.Database)
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}

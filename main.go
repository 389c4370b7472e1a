package main

import (
	"log"
	"os"

	"endofind-updater/config"
	"endofind-updater/fetcher"
	"endofind-updater/merge"
	"endofind-updater/scraper"
	"endofind-updater/store"
	"endofind-updater/updater"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const defaultConfigPath = "config.yaml"

func main() {
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg := loadConfig(configPath(), logger)

	st := store.New(cfg.DataPath, cfg.LogPath, cfg.HistoryLimit)
	f := fetcher.NewCollyFetcher(cfg, logger)
	sources := []scraper.Source{
		scraper.NewICareBetter(f, logger, cfg.MaxPages),
		scraper.NewEndofEndo(f, logger),
		scraper.NewPelvicRehab(f, logger),
	}

	u := updater.New(st, merge.New(logger), sources, logger)
	if _, err := u.Run(); err != nil {
		logger.Error("update failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func configPath() string {
	if p := os.Getenv("UPDATER_CONFIG"); p != "" {
		return p
	}
	return defaultConfigPath
}

// loadConfig falls back to defaults when no config file is present, so the
// updater runs with no arguments.
func loadConfig(path string, logger *zap.Logger) *config.Config {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info("no config file found, using defaults", zap.String("path", path))
		return config.GetDefaultConfig()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		logger.Warn("failed to load config, using defaults",
			zap.String("path", path),
			zap.Error(err))
		return config.GetDefaultConfig()
	}

	logger.Info("loaded config", zap.String("path", path))
	return cfg
}

package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mazrooa/fatoora/api"
	"github.com/mazrooa/fatoora/models"
	"github.com/mazrooa/fatoora/store"
)

func main() {
	logger := logrus.New()

	// optional .env, same as the old deployment
	if err := godotenv.Load(); err != nil {
		logger.Printf("no .env file: %v", err)
	}

	var cfg models.Config
	if err := models.ParseConfig("fatoora.json", &cfg); err != nil {
		logger.Printf("error in parsing config file: %v", err)
	}
	cfg.FromEnv()
	cfg.Defaults()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		logger.SetReportCaller(true)
	}

	db, err := store.Open(cfg)
	if err != nil {
		logger.Fatalf("error in connecting to db: %v", err)
	}

	engine := api.GetMainEngine(cfg, db, logger)
	if err := engine.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Fatalf("error in running server: %v", err)
	}
}

package main

import (
	"github.com/osse101/roomcrawl/internal/config"
	"github.com/osse101/roomcrawl/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	logger.InitLogger(cfg.LoggerConfig())
}

// Package main is the entry point for the LearnOpenGL tutorial runner.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/learnopengl/internal/app"
	"github.com/Faultbox/learnopengl/internal/config"
	"github.com/Faultbox/learnopengl/internal/logger"
	"github.com/Faultbox/learnopengl/internal/scenes"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	if config.ListScenes() {
		for _, name := range scenes.Names() {
			fmt.Println(name)
		}
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== LearnOpenGL ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Warn("failed to save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		}
	}

	if err := run(cfg); err != nil {
		logger.Error("exiting", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("window closed normally")
}

func run(cfg *config.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			logger.Warn("errors during shutdown", zap.Error(cerr))
		}
	}()
	return a.Run()
}

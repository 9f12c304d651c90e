package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/lolabot/saint-objet/internal/commands"
	"github.com/lolabot/saint-objet/internal/config"
	"github.com/lolabot/saint-objet/internal/logger"
)

func main() {
	// A .env file is optional; environment variables alone are fine.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	rootCmd := commands.NewRootCmd(cfg, log)
	rootCmd.AddCommand(
		commands.NewDaemonCmd(cfg, log),
		commands.NewHistoryCmd(cfg, log),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/heal-booking-service/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "heal-booking-service",
	Short:         "Heal booking service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to TOML config file")
}

// Execute запускает дерево команд
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

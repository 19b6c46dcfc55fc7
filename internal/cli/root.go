package cli

import (
	"Bloghouse/internal/api/config"
	"Bloghouse/internal/pkg/database"
	"Bloghouse/internal/pkg/logger"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// NewRootCmd builds the blogctl command tree.
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "blogctl",
		Short:         "Operator tool for the Bloghouse blog API",
		Long:          "blogctl runs schema migrations, creates author accounts and issues API tokens",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadConfigFrom(configPath); err != nil {
				return err
			}
			logger.InitLogger(config.Cfg.Logger)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./configs/config.yaml)")

	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newUserCmd())
	rootCmd.AddCommand(newTokenCmd())
	rootCmd.AddCommand(newGuardsCmd())
	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

func openDB() (*gorm.DB, error) {
	dbCfg := config.Cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

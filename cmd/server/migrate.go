package main

import (
	"fmt"

	"github.com/sabidos/sabidos-api/internal/config"
	"github.com/sabidos/sabidos-api/internal/database"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			db, err := database.Connect(cfg)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			if err := database.MigrateDatabase(db); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "migrations applied (%s)\n", cfg.DBDriver)
			return nil
		},
	}
}

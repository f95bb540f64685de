package main

import (
	"foodgram/cmd/config"
	migration "foodgram/cmd/database/migrate"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := config.ConnectDB()
		if err != nil {
			return err
		}
		if err := migration.Migrate(db); err != nil {
			return err
		}
		log.Info("migration completed")
		return nil
	},
}

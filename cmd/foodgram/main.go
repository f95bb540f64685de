package main

import (
	"os"

	"foodgram/internal/utils"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "foodgram",
	Short: "Foodgram recipe sharing backend",
	Long: `Foodgram serves the recipe sharing API: users and subscriptions,
recipes with tags and ingredients, favourites, shopping lists and
short links to recipes.

Configuration is read from config.yaml (or CONFIG_FILE), then .env and
the process environment.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.LoadConfig()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, loadIngredientsCmd, loadTagsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

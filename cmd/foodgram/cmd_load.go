package main

import (
	"foodgram/cmd/config"
	"foodgram/internal/utils/seed"
	"foodgram/pkg/ingredient"
	"foodgram/pkg/tag"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

var (
	ingredientsFile string
	tagsFile        string
)

// loadIngredientsCmd fills the ingredient catalog from a fixture file.
//
// JSON files hold [{"name": ..., "measurement_unit": ...}]; CSV files hold
// name,unit rows without a header. Rows already present are skipped.
var loadIngredientsCmd = &cobra.Command{
	Use:   "load-ingredients",
	Short: "Load ingredients from a JSON or CSV file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		seeds, err := seed.ReadIngredients(ingredientsFile)
		if err != nil {
			return err
		}

		db, err := config.ConnectDB()
		if err != nil {
			return err
		}

		service := ingredient.NewIngredientService(ingredient.NewIngredientRepository(db))
		created, err := service.LoadIngredients(cmd.Context(), seeds)
		if err != nil {
			return err
		}
		log.Infof("loaded %d ingredients (%d already present)", created, len(seeds)-created)
		return nil
	},
}

var loadTagsCmd = &cobra.Command{
	Use:   "load-tags",
	Short: "Load tags from a JSON or CSV file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		seeds, err := seed.ReadTags(tagsFile)
		if err != nil {
			return err
		}

		db, err := config.ConnectDB()
		if err != nil {
			return err
		}

		service := tag.NewTagService(tag.NewTagRepository(db))
		created, err := service.LoadTags(cmd.Context(), seeds)
		if err != nil {
			return err
		}
		log.Infof("loaded %d tags (%d already present)", created, len(seeds)-created)
		return nil
	},
}

func init() {
	loadIngredientsCmd.Flags().StringVarP(&ingredientsFile, "file", "f", "data/ingredients.json", "path to the ingredients file")
	loadTagsCmd.Flags().StringVarP(&tagsFile, "file", "f", "data/tags.json", "path to the tags file")
}

// Package testutil builds throwaway databases and fixtures for package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	migration "foodgram/cmd/database/migrate"
	"foodgram/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB returns a migrated in-memory SQLite database private to t.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%s?mode=memory&cache=shared&_foreign_keys=1", name, uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.Migrate(db))
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	t.Helper()
	user := &entities.User{
		Email:     username + "@example.com",
		Username:  username,
		FirstName: username,
		LastName:  "Tester",
		Password:  "not-a-hash",
		Role:      "user",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateTag(t *testing.T, db *gorm.DB, name string) *entities.Tag {
	t.Helper()
	tag := &entities.Tag{Name: name, Slug: strings.ToLower(name)}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func CreateIngredient(t *testing.T, db *gorm.DB, name, unit string) *entities.Ingredient {
	t.Helper()
	ingredient := &entities.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}

// IngredientAmount pairs an ingredient with the amount a recipe uses.
type IngredientAmount struct {
	Ingredient *entities.Ingredient
	Amount     int
}

func CreateRecipe(t *testing.T, db *gorm.DB, author *entities.User, name string, items ...IngredientAmount) *entities.Recipe {
	t.Helper()
	recipe := &entities.Recipe{
		AuthorID:    author.ID,
		Name:        name,
		Text:        "Mix and cook.",
		CookingTime: 10,
		ImageURL:    "https://images.example.com/" + name + ".png",
	}
	require.NoError(t, db.Create(recipe).Error)

	for i, item := range items {
		require.NoError(t, db.Create(&entities.RecipeIngredient{
			RecipeID:     recipe.ID,
			IngredientID: item.Ingredient.ID,
			Amount:       item.Amount,
			Position:     i,
		}).Error)
	}
	return recipe
}

func AddToCart(t *testing.T, db *gorm.DB, user *entities.User, recipe *entities.Recipe) {
	t.Helper()
	require.NoError(t, db.Create(&entities.ShoppingCartEntry{UserID: user.ID, RecipeID: recipe.ID}).Error)
}

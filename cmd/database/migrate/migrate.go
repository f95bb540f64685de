package migration

import (
	"fmt"

	"foodgram/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Models() []any {
	return []any{
		&entities.User{},
		&entities.Follow{},
		&entities.RevokedToken{},
		&entities.Tag{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.Favourite{},
		&entities.ShoppingCartEntry{},
		&entities.RecipeLink{},
	}
}

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}

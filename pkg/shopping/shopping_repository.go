package shopping

import (
	"context"

	"gorm.io/gorm"
)

type (
	// CartRow is one ingredient line of one recipe in a user's cart.
	CartRow struct {
		Name            string
		MeasurementUnit string
		Amount          int
	}

	ShoppingRepository interface {
		GetCartRows(ctx context.Context, userID string) ([]CartRow, error)
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

// GetCartRows lists cart ingredients in visiting order: cart entries by the
// time they were added, then recipe id, then the ingredient's position in the
// recipe.
func (r *shoppingRepository) GetCartRows(ctx context.Context, userID string) ([]CartRow, error) {
	var rows []CartRow
	if err := r.db.WithContext(ctx).
		Table("shopping_cart_entries").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, recipe_ingredients.amount AS amount").
		Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = shopping_cart_entries.recipe_id").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("shopping_cart_entries.user_id = ?", userID).
		Order("shopping_cart_entries.created_at asc").
		Order("shopping_cart_entries.recipe_id asc").
		Order("recipe_ingredients.position asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

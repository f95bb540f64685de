package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	UnitGrams       = "g"
	UnitKilograms   = "kg"
	UnitMilliliters = "ml"
	UnitLiters      = "L"
	UnitSpoonfuls   = "sps"
	UnitPieces      = "pcs"
)

// MeasurementUnits maps a stored unit code to its display name.
var MeasurementUnits = map[string]string{
	UnitGrams:       "Grams",
	UnitKilograms:   "Kilograms",
	UnitMilliliters: "Milliliters",
	UnitLiters:      "Liters",
	UnitSpoonfuls:   "Spoonfuls",
	UnitPieces:      "Pieces",
}

type Tag struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:255;not null" json:"name"`
	Slug string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
}

type Ingredient struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"size:255;index;not null" json:"name"`
	MeasurementUnit string    `gorm:"size:3;not null" json:"measurement_unit"`
}

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_unique_recipe;not null" json:"author_id"`
	Name        string    `gorm:"size:255;uniqueIndex:idx_unique_recipe;not null" json:"name"`
	ImageURL    string    `json:"image,omitempty"`
	Text        string    `gorm:"type:text" json:"text"`
	CookingTime int       `gorm:"not null" json:"cooking_time"`

	Author            *User               `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Tags              []*Tag              `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
	RecipeIngredients []*RecipeIngredient `gorm:"foreignKey:RecipeID"`
	Timestamp
}

// RecipeIngredient binds an ingredient and its amount to a recipe. Position
// keeps the order in which the author listed the ingredients.
type RecipeIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_unique_ingredients;not null" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_unique_ingredients;not null" json:"ingredient_id"`
	Amount       int       `gorm:"not null;check:amount > 0" json:"amount"`
	Position     int       `gorm:"not null;default:0" json:"position"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
}

type Favourite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_unique_favourite;not null" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_unique_favourite;not null" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// ShoppingCartEntry puts one recipe into one user's cart. A cart holds any
// number of recipes, each at most once.
type ShoppingCartEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_unique_cart_entry;not null" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_unique_cart_entry;not null" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

type RecipeLink struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"recipe_id"`
	Token     string    `gorm:"size:20;uniqueIndex;not null" json:"token"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

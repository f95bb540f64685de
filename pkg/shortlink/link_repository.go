package shortlink

import (
	"context"

	"foodgram/entities"

	"gorm.io/gorm"
)

type (
	LinkRepository interface {
		RecipeExists(ctx context.Context, recipeID string) (bool, error)
		GetLinkByRecipeID(ctx context.Context, recipeID string) (*entities.RecipeLink, error)
		GetLinkByToken(ctx context.Context, token string) (*entities.RecipeLink, error)
		TokenExists(ctx context.Context, token string) (bool, error)
		CreateLink(ctx context.Context, link *entities.RecipeLink) error
	}

	linkRepository struct {
		db *gorm.DB
	}
)

func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{db: db}
}

func (r *linkRepository) RecipeExists(ctx context.Context, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *linkRepository) GetLinkByRecipeID(ctx context.Context, recipeID string) (*entities.RecipeLink, error) {
	var link entities.RecipeLink
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *linkRepository) GetLinkByToken(ctx context.Context, token string) (*entities.RecipeLink, error) {
	var link entities.RecipeLink
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *linkRepository) TokenExists(ctx context.Context, token string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeLink{}).
		Where("token = ?", token).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateLink runs outside any transaction so a unique violation leaves the
// connection usable for the caller's retry.
func (r *linkRepository) CreateLink(ctx context.Context, link *entities.RecipeLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

package recipe

import (
	"context"
	"errors"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/utils/storage"
	"foodgram/pkg/ingredient"
	"foodgram/pkg/tag"
	"foodgram/pkg/user"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const recipeImageFolder = "recipes"

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID string, page, limit int) ([]domain.Recipe, int64, error)
		GetRecipeByID(ctx context.Context, id string, viewerID string) (domain.Recipe, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.Recipe, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID, role string) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, id string, userID, role string) error
		AddFavourite(ctx context.Context, id string, userID string) (domain.RecipeShort, error)
		RemoveFavourite(ctx context.Context, id string, userID string) error
		AddToShoppingCart(ctx context.Context, id string, userID string) (domain.RecipeShort, error)
		RemoveFromShoppingCart(ctx context.Context, id string, userID string) error
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		userRepository       user.UserRepository
		tagRepository        tag.TagRepository
		ingredientRepository ingredient.IngredientRepository
		s3                   storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	userRepository user.UserRepository,
	tagRepository tag.TagRepository,
	ingredientRepository ingredient.IngredientRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		userRepository:       userRepository,
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
		s3:                   s3,
	}
}

func (s *recipeService) getRecipe(ctx context.Context, id string) (*entities.Recipe, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrRecipeNotFound
	}
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// toDomainRecipe fills the viewer-dependent flags; lookups that fail leave
// them false.
func (s *recipeService) toDomainRecipe(ctx context.Context, recipe *entities.Recipe, viewerID string) domain.Recipe {
	res := domain.Recipe{
		ID:          recipe.ID.String(),
		Tags:        make([]domain.Tag, 0, len(recipe.Tags)),
		Ingredients: make([]domain.RecipeIngredient, 0, len(recipe.RecipeIngredients)),
		Name:        recipe.Name,
		Image:       recipe.ImageURL,
		Text:        recipe.Text,
		CookingTime: recipe.CookingTime,
	}
	for _, t := range recipe.Tags {
		res.Tags = append(res.Tags, tag.ToDomainTag(t))
	}
	for _, item := range recipe.RecipeIngredients {
		if item.Ingredient == nil {
			continue
		}
		res.Ingredients = append(res.Ingredients, domain.RecipeIngredient{
			ID:              item.Ingredient.ID.String(),
			Name:            item.Ingredient.Name,
			MeasurementUnit: item.Ingredient.MeasurementUnit,
			Amount:          item.Amount,
		})
	}

	isSubscribed := false
	if viewerID != "" {
		recipeID := recipe.ID.String()
		res.IsFavorited, _ = s.recipeRepository.IsFavourite(ctx, viewerID, recipeID)
		res.IsInShoppingCart, _ = s.recipeRepository.IsInCart(ctx, viewerID, recipeID)
		isSubscribed, _ = s.userRepository.IsFollowing(ctx, viewerID, recipe.AuthorID.String())
	}
	if recipe.Author != nil {
		res.Author = user.ToDomainUser(recipe.Author, isSubscribed)
	}
	return res
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID string, page, limit int) ([]domain.Recipe, int64, error) {
	if filter.AuthorID != "" {
		if _, err := uuid.Parse(filter.AuthorID); err != nil {
			return []domain.Recipe{}, 0, nil
		}
	}

	recipes, count, err := s.recipeRepository.GetRecipes(ctx, filter, viewerID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, s.toDomainRecipe(ctx, recipe, viewerID))
	}
	return result, count, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id string, viewerID string) (domain.Recipe, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}
	return s.toDomainRecipe(ctx, recipe, viewerID), nil
}

// resolveComposition checks the requested tags and ingredients and returns
// them as entities, ingredients in request order.
func (s *recipeService) resolveComposition(ctx context.Context, tagIDs []string, items []domain.RecipeIngredientRequest) ([]*entities.Tag, []*entities.RecipeIngredient, error) {
	seenTags := make(map[string]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		if _, ok := seenTags[id]; ok {
			return nil, nil, domain.ErrDuplicateTag
		}
		seenTags[id] = struct{}{}
	}

	ingredientIDs := make([]string, 0, len(items))
	seenIngredients := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seenIngredients[item.ID]; ok {
			return nil, nil, domain.ErrDuplicateIngredient
		}
		seenIngredients[item.ID] = struct{}{}
		ingredientIDs = append(ingredientIDs, item.ID)
	}

	tags, err := s.tagRepository.GetTagsByIDs(ctx, tagIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(tags) != len(tagIDs) {
		return nil, nil, domain.ErrUnknownTag
	}

	found, err := s.ingredientRepository.GetIngredientsByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(found) != len(ingredientIDs) {
		return nil, nil, domain.ErrUnknownIngredient
	}

	ingredients := make([]*entities.RecipeIngredient, 0, len(items))
	for i, item := range items {
		ingredients = append(ingredients, &entities.RecipeIngredient{
			IngredientID: uuid.MustParse(item.ID),
			Amount:       item.Amount,
			Position:     i,
		})
	}
	return tags, ingredients, nil
}

func (s *recipeService) uploadImage(ctx context.Context, data string) (string, error) {
	objectKey, err := s.s3.UploadBase64Image(ctx, data, recipeImageFolder)
	if err != nil {
		return "", err
	}
	return s.s3.GetPublicLinkKey(objectKey), nil
}

func (s *recipeService) deleteImage(ctx context.Context, link string) {
	if link == "" {
		return
	}
	if objectKey := s.s3.GetObjectKeyFromLink(link); objectKey != "" {
		if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
			log.Warnf("failed to delete recipe image %s: %v", objectKey, err)
		}
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.Recipe, error) {
	authorID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Recipe{}, domain.ErrUserNotFound
	}

	tags, ingredients, err := s.resolveComposition(ctx, req.Tags, req.Ingredients)
	if err != nil {
		return domain.Recipe{}, err
	}

	exists, err := s.recipeRepository.ExistsByAuthorAndName(ctx, userID, req.Name, "")
	if err != nil {
		return domain.Recipe{}, err
	}
	if exists {
		return domain.Recipe{}, domain.ErrRecipeAlreadyExists
	}

	imageURL, err := s.uploadImage(ctx, req.Image)
	if err != nil {
		return domain.Recipe{}, err
	}

	recipe := &entities.Recipe{
		AuthorID:          authorID,
		Name:              req.Name,
		ImageURL:          imageURL,
		Text:              req.Text,
		CookingTime:       req.CookingTime,
		Tags:              tags,
		RecipeIngredients: ingredients,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		s.deleteImage(ctx, imageURL)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Recipe{}, domain.ErrRecipeAlreadyExists
		}
		return domain.Recipe{}, err
	}

	return s.GetRecipeByID(ctx, recipe.ID.String(), userID)
}

func canModify(recipe *entities.Recipe, userID, role string) bool {
	return role == domain.RoleAdmin || recipe.AuthorID.String() == userID
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID, role string) (domain.Recipe, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}
	if !canModify(recipe, userID, role) {
		return domain.Recipe{}, domain.ErrUnauthorizedRecipeAccess
	}

	tags, ingredients, err := s.resolveComposition(ctx, req.Tags, req.Ingredients)
	if err != nil {
		return domain.Recipe{}, err
	}

	exists, err := s.recipeRepository.ExistsByAuthorAndName(ctx, recipe.AuthorID.String(), req.Name, id)
	if err != nil {
		return domain.Recipe{}, err
	}
	if exists {
		return domain.Recipe{}, domain.ErrRecipeAlreadyExists
	}

	oldImage := ""
	if req.Image != "" {
		imageURL, err := s.uploadImage(ctx, req.Image)
		if err != nil {
			return domain.Recipe{}, err
		}
		oldImage = recipe.ImageURL
		recipe.ImageURL = imageURL
	}

	recipe.Name = req.Name
	recipe.Text = req.Text
	recipe.CookingTime = req.CookingTime
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, tags, ingredients); err != nil {
		if oldImage != "" {
			s.deleteImage(ctx, recipe.ImageURL)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Recipe{}, domain.ErrRecipeAlreadyExists
		}
		return domain.Recipe{}, err
	}
	s.deleteImage(ctx, oldImage)

	return s.GetRecipeByID(ctx, id, userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID, role string) error {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return err
	}
	if !canModify(recipe, userID, role) {
		return domain.ErrUnauthorizedRecipeAccess
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	s.deleteImage(ctx, recipe.ImageURL)
	return nil
}

func (s *recipeService) AddFavourite(ctx context.Context, id string, userID string) (domain.RecipeShort, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return domain.RecipeShort{}, err
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeShort{}, domain.ErrUserNotFound
	}

	if err := s.recipeRepository.CreateFavourite(ctx, &entities.Favourite{
		UserID:   userUUID,
		RecipeID: recipe.ID,
	}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeShort{}, domain.ErrAlreadyInFavourites
		}
		return domain.RecipeShort{}, err
	}
	return user.ToRecipeShort(recipe), nil
}

func (s *recipeService) RemoveFavourite(ctx context.Context, id string, userID string) error {
	if _, err := s.getRecipe(ctx, id); err != nil {
		return err
	}
	removed, err := s.recipeRepository.DeleteFavourite(ctx, userID, id)
	if err != nil {
		return err
	}
	if removed == 0 {
		return domain.ErrNotInFavourites
	}
	return nil
}

func (s *recipeService) AddToShoppingCart(ctx context.Context, id string, userID string) (domain.RecipeShort, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return domain.RecipeShort{}, err
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeShort{}, domain.ErrUserNotFound
	}

	if err := s.recipeRepository.CreateCartEntry(ctx, &entities.ShoppingCartEntry{
		UserID:   userUUID,
		RecipeID: recipe.ID,
	}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeShort{}, domain.ErrAlreadyInShoppingCart
		}
		return domain.RecipeShort{}, err
	}
	return user.ToRecipeShort(recipe), nil
}

func (s *recipeService) RemoveFromShoppingCart(ctx context.Context, id string, userID string) error {
	if _, err := s.getRecipe(ctx, id); err != nil {
		return err
	}
	removed, err := s.recipeRepository.DeleteCartEntry(ctx, userID, id)
	if err != nil {
		return err
	}
	if removed == 0 {
		return domain.ErrNotInShoppingCart
	}
	return nil
}

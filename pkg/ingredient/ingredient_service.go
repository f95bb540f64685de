package ingredient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"foodgram/domain"
	"foodgram/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		GetIngredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error)
		GetIngredientByID(ctx context.Context, id string) (domain.Ingredient, error)
		LoadIngredients(ctx context.Context, seeds []domain.IngredientSeed) (int, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func ToDomainIngredient(ingredient *entities.Ingredient) domain.Ingredient {
	return domain.Ingredient{
		ID:              ingredient.ID.String(),
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}

func (s *ingredientService) GetIngredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, strings.TrimSpace(namePrefix))
	if err != nil {
		return nil, err
	}

	result := make([]domain.Ingredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		result = append(result, ToDomainIngredient(ingredient))
	}
	return result, nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id string) (domain.Ingredient, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Ingredient{}, domain.ErrIngredientNotFound
	}
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Ingredient{}, domain.ErrIngredientNotFound
		}
		return domain.Ingredient{}, err
	}
	return ToDomainIngredient(ingredient), nil
}

func (s *ingredientService) LoadIngredients(ctx context.Context, seeds []domain.IngredientSeed) (int, error) {
	created := 0
	for i, seed := range seeds {
		if _, ok := entities.MeasurementUnits[seed.MeasurementUnit]; !ok {
			return created, fmt.Errorf("row %d (%s): %w", i+1, seed.Name, domain.ErrInvalidMeasurementUnit)
		}
		ok, err := s.ingredientRepository.UpsertIngredient(ctx, &entities.Ingredient{
			Name:            strings.TrimSpace(seed.Name),
			MeasurementUnit: seed.MeasurementUnit,
		})
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}

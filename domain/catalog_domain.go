package domain

import (
	"errors"
)

var (
	MessageSuccessGetTags        = "success get tags"
	MessageSuccessGetTag         = "success get tag"
	MessageSuccessGetIngredients = "success get ingredients"
	MessageSuccessGetIngredient  = "success get ingredient"

	MessageFailedGetTags        = "failed to get tags"
	MessageFailedGetTag         = "failed to get tag"
	MessageFailedGetIngredients = "failed to get ingredients"
	MessageFailedGetIngredient  = "failed to get ingredient"

	ErrTagNotFound             = errors.New("tag not found")
	ErrIngredientNotFound      = errors.New("ingredient not found")
	ErrInvalidMeasurementUnit  = errors.New("invalid measurement unit")
	ErrUnsupportedSeedFileType = errors.New("unsupported seed file type, expected .json or .csv")
)

type (
	Tag struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	}

	Ingredient struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
	}

	IngredientSeed struct {
		Name            string `json:"name" validate:"required,max=255"`
		MeasurementUnit string `json:"measurement_unit" validate:"required,unit"`
	}

	TagSeed struct {
		Name string `json:"name" validate:"required,max=255"`
		Slug string `json:"slug" validate:"required,max=255"`
	}
)

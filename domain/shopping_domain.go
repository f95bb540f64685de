package domain

import (
	"errors"
)

const (
	ShoppingListHeader   = "Shopping List:\n\n"
	ShoppingListFilename = "shopping_list.txt"
)

// ErrInvalidIngredientAmount means a stored amount broke the positive-amount
// invariant. It is an internal fault, never a client error.
var ErrInvalidIngredientAmount = errors.New("stored ingredient amount is not positive")

type (
	ShoppingListLine struct {
		Name            string `json:"name"`
		Amount          int    `json:"amount"`
		MeasurementUnit string `json:"measurement_unit"`
	}
)

package presenters

import (
	"errors"
	"fmt"
	"testing"

	"foodgram/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrRecipeNotFound, fiber.StatusNotFound},
		{domain.ErrLinkNotFound, fiber.StatusNotFound},
		{fmt.Errorf("lookup: %w", domain.ErrUserNotFound), fiber.StatusNotFound},
		{domain.ErrUnauthorizedRecipeAccess, fiber.StatusForbidden},
		{domain.ErrTokenRevoked, fiber.StatusUnauthorized},
		{domain.ErrAlreadyInShoppingCart, fiber.StatusBadRequest},
		{domain.ErrUnknownTag, fiber.StatusBadRequest},
		{domain.ErrInvalidIngredientAmount, fiber.StatusInternalServerError},
		{errors.New("connection reset"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromError(tt.err))
		})
	}
}

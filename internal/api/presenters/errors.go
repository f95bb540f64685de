package presenters

import (
	"errors"

	"foodgram/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

var (
	notFoundErrors = []error{
		domain.ErrUserNotFound,
		domain.ErrRecipeNotFound,
		domain.ErrTagNotFound,
		domain.ErrIngredientNotFound,
		domain.ErrLinkNotFound,
	}

	forbiddenErrors = []error{
		domain.ErrUnauthorizedRecipeAccess,
		domain.ErrUserNotAllowed,
	}

	unauthorizedErrors = []error{
		domain.ErrTokenNotFound,
		domain.ErrTokenExpired,
		domain.ErrTokenInvalid,
		domain.ErrTokenRevoked,
	}

	badRequestErrors = []error{
		domain.ErrEmailAlreadyExists,
		domain.ErrUsernameAlreadyExists,
		domain.ErrInvalidCredentials,
		domain.ErrIncorrectPassword,
		domain.ErrSelfFollow,
		domain.ErrAlreadyFollowing,
		domain.ErrNotFollowing,
		domain.ErrInvalidImage,
		domain.ErrRecipeAlreadyExists,
		domain.ErrDuplicateIngredient,
		domain.ErrDuplicateTag,
		domain.ErrUnknownIngredient,
		domain.ErrUnknownTag,
		domain.ErrAlreadyInFavourites,
		domain.ErrNotInFavourites,
		domain.ErrAlreadyInShoppingCart,
		domain.ErrNotInShoppingCart,
		domain.ErrParseUUID,
	}
)

func matches(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// StatusFromError maps a service error to its HTTP status. Unknown errors,
// including broken stored invariants, are internal.
func StatusFromError(err error) int {
	var validationErrors validator.ValidationErrors
	switch {
	case matches(err, notFoundErrors):
		return fiber.StatusNotFound
	case matches(err, forbiddenErrors):
		return fiber.StatusForbidden
	case matches(err, unauthorizedErrors):
		return fiber.StatusUnauthorized
	case matches(err, badRequestErrors), errors.As(err, &validationErrors):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ServiceErrorResponse answers with the status StatusFromError picks. Internal
// errors are logged and their text is not sent to the client.
func ServiceErrorResponse(c *fiber.Ctx, message string, err error) error {
	status := StatusFromError(err)
	if status == fiber.StatusInternalServerError {
		log.Errorf("%s %s: %s: %v", c.Method(), c.OriginalURL(), message, err)
		return ErrorResponse(c, status, message, errors.New(domain.MessageFailedProcessRequest))
	}
	return ErrorResponse(c, status, message, err)
}

package handlers

import (
	"foodgram/domain"

	"github.com/gofiber/fiber/v2"
)

func pageParams(c *fiber.Ctx) (int, int) {
	return domain.NormalizePage(c.QueryInt("page", 1), c.QueryInt("limit", domain.DefaultPageLimit))
}

func paginated(results any, page, limit int, count int64) fiber.Map {
	return fiber.Map{
		"count":      count,
		"results":    results,
		"pagination": domain.NewPagination(page, limit, count),
	}
}

// queryFlag reads boolean filters sent as 1/0 or true/false.
func queryFlag(c *fiber.Ctx, key string) bool {
	switch c.Query(key) {
	case "1", "true", "True":
		return true
	default:
		return false
	}
}

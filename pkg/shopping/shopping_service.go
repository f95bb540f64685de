package shopping

import (
	"context"
	"fmt"
	"strings"

	"foodgram/domain"

	"github.com/gofiber/fiber/v2/log"
)

type (
	ShoppingService interface {
		BuildShoppingList(ctx context.Context, userID string) ([]domain.ShoppingListLine, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
	}

	lineKey struct {
		name string
		unit string
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository) ShoppingService {
	return &shoppingService{shoppingRepository: shoppingRepository}
}

func (s *shoppingService) BuildShoppingList(ctx context.Context, userID string) ([]domain.ShoppingListLine, error) {
	rows, err := s.shoppingRepository.GetCartRows(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines, err := Aggregate(rows)
	if err != nil {
		log.Errorf("shopping list for user %s: %v", userID, err)
		return nil, err
	}

	listsBuilt.Inc()
	listLines.Observe(float64(len(lines)))
	return lines, nil
}

// Aggregate sums amounts per (name, unit) pair. Lines keep the order in which
// each pair was first seen. The same name under two units stays two lines.
func Aggregate(rows []CartRow) ([]domain.ShoppingListLine, error) {
	lines := make([]domain.ShoppingListLine, 0, len(rows))
	index := make(map[lineKey]int, len(rows))

	for _, row := range rows {
		if row.Amount <= 0 {
			return nil, fmt.Errorf("%w: %s (%s) has amount %d",
				domain.ErrInvalidIngredientAmount, row.Name, row.MeasurementUnit, row.Amount)
		}

		key := lineKey{name: row.Name, unit: row.MeasurementUnit}
		if i, ok := index[key]; ok {
			lines[i].Amount += row.Amount
			continue
		}
		index[key] = len(lines)
		lines = append(lines, domain.ShoppingListLine{
			Name:            row.Name,
			Amount:          row.Amount,
			MeasurementUnit: row.MeasurementUnit,
		})
	}
	return lines, nil
}

func Render(lines []domain.ShoppingListLine) string {
	var b strings.Builder
	b.WriteString(domain.ShoppingListHeader)
	for _, line := range lines {
		fmt.Fprintf(&b, "%s: %d %s\n", line.Name, line.Amount, line.MeasurementUnit)
	}
	return b.String()
}

package shortlink

import (
	"context"
	"errors"

	"foodgram/domain"
	"foodgram/entities"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	LinkService interface {
		GetOrCreateLink(ctx context.Context, recipeID string) (string, error)
		Resolve(ctx context.Context, token string) (string, error)
	}

	linkService struct {
		linkRepository LinkRepository
		generate       TokenGenerator
	}
)

func NewLinkService(linkRepository LinkRepository) LinkService {
	return NewLinkServiceWithGenerator(linkRepository, RandomToken)
}

func NewLinkServiceWithGenerator(linkRepository LinkRepository, generate TokenGenerator) LinkService {
	return &linkService{
		linkRepository: linkRepository,
		generate:       generate,
	}
}

// GetOrCreateLink returns the recipe's token, issuing one on first use. A
// recipe keeps a single token for its whole life; concurrent callers all
// observe the winner of the insert race.
func (s *linkService) GetOrCreateLink(ctx context.Context, recipeID string) (string, error) {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return "", domain.ErrRecipeNotFound
	}

	exists, err := s.linkRepository.RecipeExists(ctx, recipeID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.ErrRecipeNotFound
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		link, err := s.linkRepository.GetLinkByRecipeID(ctx, recipeID)
		if err == nil {
			return link.Token, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}

		token := s.generate()
		taken, err := s.linkRepository.TokenExists(ctx, token)
		if err != nil {
			return "", err
		}
		if taken {
			linkRetries.WithLabelValues("token_taken").Inc()
			continue
		}

		err = s.linkRepository.CreateLink(ctx, &entities.RecipeLink{RecipeID: id, Token: token})
		switch {
		case err == nil:
			linksCreated.Inc()
			log.Infof("short link %s issued for recipe %s", token, recipeID)
			return token, nil
		case errors.Is(err, gorm.ErrDuplicatedKey):
			linkRetries.WithLabelValues("duplicate_key").Inc()
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return "", domain.ErrRecipeNotFound
		default:
			return "", err
		}
	}
}

func (s *linkService) Resolve(ctx context.Context, token string) (string, error) {
	link, err := s.linkRepository.GetLinkByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrLinkNotFound
		}
		return "", err
	}
	linksResolved.Inc()
	return link.RecipeID.String(), nil
}

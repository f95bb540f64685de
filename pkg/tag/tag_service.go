package tag

import (
	"context"
	"errors"

	"foodgram/domain"
	"foodgram/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TagService interface {
		GetTags(ctx context.Context) ([]domain.Tag, error)
		GetTagByID(ctx context.Context, id string) (domain.Tag, error)
		LoadTags(ctx context.Context, seeds []domain.TagSeed) (int, error)
	}

	tagService struct {
		tagRepository TagRepository
	}
)

func NewTagService(tagRepository TagRepository) TagService {
	return &tagService{tagRepository: tagRepository}
}

func ToDomainTag(tag *entities.Tag) domain.Tag {
	return domain.Tag{
		ID:   tag.ID.String(),
		Name: tag.Name,
		Slug: tag.Slug,
	}
}

func (s *tagService) GetTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tagRepository.GetTags(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Tag, 0, len(tags))
	for _, tag := range tags {
		result = append(result, ToDomainTag(tag))
	}
	return result, nil
}

func (s *tagService) GetTagByID(ctx context.Context, id string) (domain.Tag, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Tag{}, domain.ErrTagNotFound
	}
	tag, err := s.tagRepository.GetTagByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Tag{}, domain.ErrTagNotFound
		}
		return domain.Tag{}, err
	}
	return ToDomainTag(tag), nil
}

func (s *tagService) LoadTags(ctx context.Context, seeds []domain.TagSeed) (int, error) {
	created := 0
	for _, seed := range seeds {
		ok, err := s.tagRepository.UpsertTag(ctx, &entities.Tag{Name: seed.Name, Slug: seed.Slug})
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}

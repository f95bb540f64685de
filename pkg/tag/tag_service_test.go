package tag

import (
	"context"
	"testing"

	"foodgram/domain"
	"foodgram/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagService_GetTags(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewTagService(NewTagRepository(db))
	ctx := context.Background()

	lunch := testutil.CreateTag(t, db, "Lunch")
	testutil.CreateTag(t, db, "Breakfast")

	tags, err := svc.GetTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "Breakfast", tags[0].Name)

	tag, err := svc.GetTagByID(ctx, lunch.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "lunch", tag.Slug)

	_, err = svc.GetTagByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrTagNotFound)

	_, err = svc.GetTagByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrTagNotFound)
}

func TestTagService_LoadTagsIsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewTagService(NewTagRepository(db))
	ctx := context.Background()

	seeds := []domain.TagSeed{{Name: "Breakfast", Slug: "breakfast"}, {Name: "Dinner", Slug: "dinner"}}

	created, err := svc.LoadTags(ctx, seeds)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = svc.LoadTags(ctx, seeds)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

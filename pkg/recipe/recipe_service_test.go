package recipe

import (
	"context"
	"testing"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/testutil"
	"foodgram/pkg/ingredient"
	"foodgram/pkg/tag"
	"foodgram/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	service RecipeService
	s3      *testutil.FakeS3

	author    *entities.User
	reader    *entities.User
	breakfast *entities.Tag
	dinner    *entities.Tag
	flour     *entities.Ingredient
	milk      *entities.Ingredient
}

func newFixture(t *testing.T) fixture {
	db := testutil.NewTestDB(t)
	s3 := testutil.NewFakeS3()
	return fixture{
		db: db,
		service: NewRecipeService(
			NewRecipeRepository(db),
			user.NewUserRepository(db),
			tag.NewTagRepository(db),
			ingredient.NewIngredientRepository(db),
			s3,
		),
		s3:        s3,
		author:    testutil.CreateUser(t, db, "author"),
		reader:    testutil.CreateUser(t, db, "reader"),
		breakfast: testutil.CreateTag(t, db, "Breakfast"),
		dinner:    testutil.CreateTag(t, db, "Dinner"),
		flour:     testutil.CreateIngredient(t, db, "flour", "g"),
		milk:      testutil.CreateIngredient(t, db, "milk", "ml"),
	}
}

func (f fixture) request(name string) domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Ingredients: []domain.RecipeIngredientRequest{
			{ID: f.milk.ID.String(), Amount: 250},
			{ID: f.flour.ID.String(), Amount: 200},
		},
		Tags:        []string{f.breakfast.ID.String()},
		Image:       testutil.PNG,
		Name:        name,
		Text:        "Whisk and fry.",
		CookingTime: 15,
	}
}

func (f fixture) create(t *testing.T, name string) domain.Recipe {
	t.Helper()
	recipe, err := f.service.CreateRecipe(context.Background(), f.request(name), f.author.ID.String())
	require.NoError(t, err)
	return recipe
}

func TestRecipeService_CreateRecipe(t *testing.T) {
	f := newFixture(t)

	recipe := f.create(t, "Pancakes")
	assert.Equal(t, "Pancakes", recipe.Name)
	assert.Equal(t, "author", recipe.Author.Username)
	assert.Contains(t, recipe.Image, "recipes/")
	assert.Equal(t, 1, f.s3.Len())
	require.Len(t, recipe.Tags, 1)
	assert.Equal(t, "breakfast", recipe.Tags[0].Slug)
	assert.Equal(t, []domain.RecipeIngredient{
		{ID: f.milk.ID.String(), Name: "milk", MeasurementUnit: "ml", Amount: 250},
		{ID: f.flour.ID.String(), Name: "flour", MeasurementUnit: "g", Amount: 200},
	}, recipe.Ingredients)
}

func TestRecipeService_CreateRecipeRejectsBadComposition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	authorID := f.author.ID.String()

	req := f.request("Dup ingredient")
	req.Ingredients = append(req.Ingredients, domain.RecipeIngredientRequest{ID: f.milk.ID.String(), Amount: 1})
	_, err := f.service.CreateRecipe(ctx, req, authorID)
	assert.ErrorIs(t, err, domain.ErrDuplicateIngredient)

	req = f.request("Dup tag")
	req.Tags = []string{f.dinner.ID.String(), f.dinner.ID.String()}
	_, err = f.service.CreateRecipe(ctx, req, authorID)
	assert.ErrorIs(t, err, domain.ErrDuplicateTag)

	req = f.request("Unknown ingredient")
	req.Ingredients[0].ID = uuid.NewString()
	_, err = f.service.CreateRecipe(ctx, req, authorID)
	assert.ErrorIs(t, err, domain.ErrUnknownIngredient)

	req = f.request("Unknown tag")
	req.Tags = []string{uuid.NewString()}
	_, err = f.service.CreateRecipe(ctx, req, authorID)
	assert.ErrorIs(t, err, domain.ErrUnknownTag)

	f.create(t, "Pancakes")
	_, err = f.service.CreateRecipe(ctx, f.request("Pancakes"), authorID)
	assert.ErrorIs(t, err, domain.ErrRecipeAlreadyExists)

	_, err = f.service.CreateRecipe(ctx, f.request("Pancakes"), f.reader.ID.String())
	assert.NoError(t, err, "another author may reuse the name")
}

func TestRecipeService_UpdateRecipe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	recipe := f.create(t, "Pancakes")

	req := domain.UpdateRecipeRequest{
		Ingredients: []domain.RecipeIngredientRequest{{ID: f.flour.ID.String(), Amount: 500}},
		Tags:        []string{f.dinner.ID.String(), f.breakfast.ID.String()},
		Name:        "Crepes",
		Text:        "Thinner.",
		CookingTime: 20,
	}

	_, err := f.service.UpdateRecipe(ctx, recipe.ID, req, f.reader.ID.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)

	updated, err := f.service.UpdateRecipe(ctx, recipe.ID, req, f.author.ID.String(), domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "Crepes", updated.Name)
	assert.Equal(t, recipe.Image, updated.Image, "image kept when none is sent")
	assert.Len(t, updated.Tags, 2)
	assert.Equal(t, []domain.RecipeIngredient{
		{ID: f.flour.ID.String(), Name: "flour", MeasurementUnit: "g", Amount: 500},
	}, updated.Ingredients)

	req.Image = testutil.PNG
	updated, err = f.service.UpdateRecipe(ctx, recipe.ID, req, f.reader.ID.String(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.NotEqual(t, recipe.Image, updated.Image)
	assert.Equal(t, 1, f.s3.Len(), "replaced image is removed from storage")

	_, err = f.service.UpdateRecipe(ctx, uuid.NewString(), req, f.author.ID.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRecipeService_DeleteRecipeRemovesDependents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	recipe := f.create(t, "Pancakes")
	readerID := f.reader.ID.String()

	_, err := f.service.AddFavourite(ctx, recipe.ID, readerID)
	require.NoError(t, err)
	_, err = f.service.AddToShoppingCart(ctx, recipe.ID, readerID)
	require.NoError(t, err)
	require.NoError(t, f.db.Create(&entities.RecipeLink{RecipeID: uuid.MustParse(recipe.ID), Token: "AbCd1234"}).Error)

	assert.ErrorIs(t, f.service.DeleteRecipe(ctx, recipe.ID, readerID, domain.RoleUser), domain.ErrUnauthorizedRecipeAccess)
	require.NoError(t, f.service.DeleteRecipe(ctx, recipe.ID, f.author.ID.String(), domain.RoleUser))

	for _, model := range []any{&entities.RecipeIngredient{}, &entities.Favourite{}, &entities.ShoppingCartEntry{}, &entities.RecipeLink{}} {
		var count int64
		require.NoError(t, f.db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "%T left behind", model)
	}
	assert.Equal(t, 0, f.s3.Len())

	_, err = f.service.GetRecipeByID(ctx, recipe.ID, "")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRecipeService_FavouritesAndCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	recipe := f.create(t, "Pancakes")
	readerID := f.reader.ID.String()

	short, err := f.service.AddFavourite(ctx, recipe.ID, readerID)
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, short.ID)
	_, err = f.service.AddFavourite(ctx, recipe.ID, readerID)
	assert.ErrorIs(t, err, domain.ErrAlreadyInFavourites)

	_, err = f.service.AddToShoppingCart(ctx, recipe.ID, readerID)
	require.NoError(t, err)
	_, err = f.service.AddToShoppingCart(ctx, recipe.ID, readerID)
	assert.ErrorIs(t, err, domain.ErrAlreadyInShoppingCart)

	viewed, err := f.service.GetRecipeByID(ctx, recipe.ID, readerID)
	require.NoError(t, err)
	assert.True(t, viewed.IsFavorited)
	assert.True(t, viewed.IsInShoppingCart)

	anonymous, err := f.service.GetRecipeByID(ctx, recipe.ID, "")
	require.NoError(t, err)
	assert.False(t, anonymous.IsFavorited)

	require.NoError(t, f.service.RemoveFavourite(ctx, recipe.ID, readerID))
	assert.ErrorIs(t, f.service.RemoveFavourite(ctx, recipe.ID, readerID), domain.ErrNotInFavourites)
	require.NoError(t, f.service.RemoveFromShoppingCart(ctx, recipe.ID, readerID))
	assert.ErrorIs(t, f.service.RemoveFromShoppingCart(ctx, recipe.ID, readerID), domain.ErrNotInShoppingCart)

	_, err = f.service.AddFavourite(ctx, uuid.NewString(), readerID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRecipeService_GetRecipesFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	readerID := f.reader.ID.String()

	pancakes := f.create(t, "Pancakes")
	waffles := f.create(t, "Waffles")

	req := f.request("Stew")
	req.Tags = []string{f.dinner.ID.String()}
	_, err := f.service.CreateRecipe(ctx, req, readerID)
	require.NoError(t, err)

	names := func(recipes []domain.Recipe) []string {
		out := make([]string, 0, len(recipes))
		for _, r := range recipes {
			out = append(out, r.Name)
		}
		return out
	}

	all, count, err := f.service.GetRecipes(ctx, domain.RecipeFilter{}, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Len(t, all, 3)

	page, count, err := f.service.GetRecipes(ctx, domain.RecipeFilter{}, "", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Len(t, page, 1)

	byAuthor, _, err := f.service.GetRecipes(ctx, domain.RecipeFilter{AuthorID: f.author.ID.String()}, "", 1, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Pancakes", "Waffles"}, names(byAuthor))

	byTag, count, err := f.service.GetRecipes(ctx, domain.RecipeFilter{TagSlugs: []string{"dinner"}}, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, []string{"Stew"}, names(byTag))

	_, err = f.service.AddFavourite(ctx, pancakes.ID, readerID)
	require.NoError(t, err)
	_, err = f.service.AddToShoppingCart(ctx, waffles.ID, readerID)
	require.NoError(t, err)

	favourites, _, err := f.service.GetRecipes(ctx, domain.RecipeFilter{IsFavorited: true}, readerID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pancakes"}, names(favourites))

	inCart, _, err := f.service.GetRecipes(ctx, domain.RecipeFilter{IsInShoppingCart: true}, readerID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Waffles"}, names(inCart))

	ignored, _, err := f.service.GetRecipes(ctx, domain.RecipeFilter{IsFavorited: true}, "", 1, 10)
	require.NoError(t, err)
	assert.Len(t, ignored, 3, "favourite filter needs a viewer")
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"foodgram/cmd/config"
	"foodgram/entities"
	"foodgram/internal/testutil"
	"foodgram/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type testApp struct {
	t   *testing.T
	db  *gorm.DB
	app *fiber.App
}

func newTestApp(t *testing.T) *testApp {
	db := testutil.NewTestDB(t)
	app, err := config.NewAppWithDependencies(db, config.Dependencies{
		S3:         testutil.NewFakeS3(),
		Mailer:     testutil.FakeMailer{},
		JWTService: jwt.NewJWTServiceWithSecret("test-secret", time.Hour),
		LogOutput:  io.Discard,
		RateLimit:  -1,
	})
	require.NoError(t, err)
	return &testApp{t: t, db: db, app: app}
}

func (a *testApp) do(method, path, token string, body any) *http.Response {
	a.t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Token "+token)
	}
	res, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	return res
}

func decode(t *testing.T, res *http.Response, data any) envelope {
	t.Helper()
	defer res.Body.Close()
	var env envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

// signUp registers a user and returns its id and auth token.
func (a *testApp) signUp(username string) (string, string) {
	a.t.Helper()
	res := a.do(http.MethodPost, "/api/users", "", map[string]string{
		"email":      username + "@example.com",
		"username":   username,
		"first_name": "First",
		"last_name":  "Last",
		"password":   "secret-" + username,
	})
	require.Equal(a.t, fiber.StatusCreated, res.StatusCode)
	var user struct {
		ID string `json:"id"`
	}
	decode(a.t, res, &user)

	res = a.do(http.MethodPost, "/api/auth/token/login", "", map[string]string{
		"email":    username + "@example.com",
		"password": "secret-" + username,
	})
	require.Equal(a.t, fiber.StatusOK, res.StatusCode)
	var login struct {
		AuthToken string `json:"auth_token"`
	}
	decode(a.t, res, &login)
	return user.ID, login.AuthToken
}

func (a *testApp) createRecipe(token, name string, items map[*entities.Ingredient]int, tags ...*entities.Tag) string {
	a.t.Helper()
	ingredients := make([]map[string]any, 0, len(items))
	for ingredient, amount := range items {
		ingredients = append(ingredients, map[string]any{"id": ingredient.ID.String(), "amount": amount})
	}
	tagIDs := make([]string, 0, len(tags))
	for _, tag := range tags {
		tagIDs = append(tagIDs, tag.ID.String())
	}

	res := a.do(http.MethodPost, "/api/recipes", token, map[string]any{
		"ingredients":  ingredients,
		"tags":         tagIDs,
		"image":        testutil.PNG,
		"name":         name,
		"text":         "Cook it.",
		"cooking_time": 10,
	})
	require.Equal(a.t, fiber.StatusCreated, res.StatusCode)
	var recipe struct {
		ID string `json:"id"`
	}
	decode(a.t, res, &recipe)
	return recipe.ID
}

func TestAuthFlow(t *testing.T) {
	a := newTestApp(t)
	_, token := a.signUp("chef")

	res := a.do(http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	var me struct {
		Username string `json:"username"`
	}
	decode(t, res, &me)
	assert.Equal(t, "chef", me.Username)

	res = a.do(http.MethodPost, "/api/auth/token/login", "", map[string]string{
		"email": "chef@example.com", "password": "wrong",
	})
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	res = a.do(http.MethodPost, "/api/auth/token/logout", token, nil)
	assert.Equal(t, fiber.StatusNoContent, res.StatusCode)

	res = a.do(http.MethodGet, "/api/users/me", token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	res = a.do(http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	a := newTestApp(t)

	res := a.do(http.MethodPost, "/api/users", "", map[string]string{
		"email": "bad", "username": "has space", "first_name": "A", "last_name": "B", "password": "secret1",
	})
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestShortLinkEndpoints(t *testing.T) {
	a := newTestApp(t)
	_, token := a.signUp("chef")
	flour := testutil.CreateIngredient(t, a.db, "flour", "g")
	breakfast := testutil.CreateTag(t, a.db, "Breakfast")
	recipeID := a.createRecipe(token, "Bread", map[*entities.Ingredient]int{flour: 500}, breakfast)

	getLink := func() string {
		res := a.do(http.MethodGet, "/api/recipes/"+recipeID+"/get-link", "", nil)
		require.Equal(t, fiber.StatusOK, res.StatusCode)
		var link struct {
			ShortLink string `json:"short-link"`
		}
		decode(t, res, &link)
		return link.ShortLink
	}

	first := getLink()
	assert.Equal(t, first, getLink())
	require.True(t, strings.HasPrefix(first, "http://example.com/s/"), first)
	assert.True(t, strings.HasSuffix(first, "/"))

	path := strings.TrimPrefix(first, "http://example.com")
	res := a.do(http.MethodGet, path, "", nil)
	assert.Equal(t, fiber.StatusFound, res.StatusCode)
	assert.Equal(t, "http://example.com/recipes/"+recipeID+"/", res.Header.Get(fiber.HeaderLocation))

	res = a.do(http.MethodGet, "/s/zzzzzzzz/", "", nil)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)

	res = a.do(http.MethodGet, "/api/recipes/"+uuid.NewString()+"/get-link", "", nil)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestShoppingCartDownload(t *testing.T) {
	a := newTestApp(t)
	_, token := a.signUp("chef")
	flour := testutil.CreateIngredient(t, a.db, "flour", "g")
	sugar := testutil.CreateIngredient(t, a.db, "sugar", "g")
	dessert := testutil.CreateTag(t, a.db, "Dessert")

	bread := a.createRecipe(token, "Bread", map[*entities.Ingredient]int{flour: 200}, dessert)
	cake := a.createRecipe(token, "Cake", map[*entities.Ingredient]int{flour: 300, sugar: 100}, dessert)

	res := a.do(http.MethodGet, "/api/recipes/download_shopping_cart", token, nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	body, _ := io.ReadAll(res.Body)
	assert.Equal(t, "Shopping List:\n\n", string(body))

	for _, id := range []string{bread, cake} {
		res = a.do(http.MethodPost, "/api/recipes/"+id+"/shopping_cart", token, nil)
		require.Equal(t, fiber.StatusCreated, res.StatusCode)
	}
	res = a.do(http.MethodPost, "/api/recipes/"+bread+"/shopping_cart", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	res = a.do(http.MethodGet, "/api/recipes/download_shopping_cart", token, nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get(fiber.HeaderContentType), "text/plain")
	assert.Contains(t, res.Header.Get(fiber.HeaderContentDisposition), "shopping_list.txt")
	body, _ = io.ReadAll(res.Body)
	assert.Contains(t, string(body), "flour: 500 g\n")
	assert.Contains(t, string(body), "sugar: 100 g\n")

	res = a.do(http.MethodDelete, "/api/recipes/"+cake+"/shopping_cart", token, nil)
	assert.Equal(t, fiber.StatusNoContent, res.StatusCode)
	res = a.do(http.MethodDelete, "/api/recipes/"+cake+"/shopping_cart", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	res = a.do(http.MethodGet, "/api/recipes/download_shopping_cart", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestRecipePermissions(t *testing.T) {
	a := newTestApp(t)
	_, authorToken := a.signUp("author")
	_, otherToken := a.signUp("other")
	milk := testutil.CreateIngredient(t, a.db, "milk", "ml")
	drinks := testutil.CreateTag(t, a.db, "Drinks")
	recipeID := a.createRecipe(authorToken, "Latte", map[*entities.Ingredient]int{milk: 200}, drinks)

	update := map[string]any{
		"ingredients":  []map[string]any{{"id": milk.ID.String(), "amount": 250}},
		"tags":         []string{drinks.ID.String()},
		"name":         "Flat white",
		"text":         "Less foam.",
		"cooking_time": 5,
	}
	res := a.do(http.MethodPatch, "/api/recipes/"+recipeID, otherToken, update)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)

	res = a.do(http.MethodPatch, "/api/recipes/"+recipeID, authorToken, update)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	res = a.do(http.MethodGet, "/api/recipes?limit=20", "", nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	var page struct {
		Count   int64 `json:"count"`
		Results []struct {
			Name string `json:"name"`
		} `json:"results"`
	}
	decode(t, res, &page)
	assert.Equal(t, int64(1), page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Flat white", page.Results[0].Name)

	res = a.do(http.MethodDelete, "/api/recipes/"+recipeID, otherToken, nil)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
	res = a.do(http.MethodDelete, "/api/recipes/"+recipeID, authorToken, nil)
	assert.Equal(t, fiber.StatusNoContent, res.StatusCode)
	res = a.do(http.MethodGet, "/api/recipes/"+recipeID, "", nil)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestCatalogAndSubscriptions(t *testing.T) {
	a := newTestApp(t)
	readerID, readerToken := a.signUp("reader")
	authorID, _ := a.signUp("author")
	testutil.CreateIngredient(t, a.db, "salt", "g")
	testutil.CreateIngredient(t, a.db, "sugar", "g")

	res := a.do(http.MethodGet, "/api/ingredients?name=sa", "", nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	var ingredients []struct {
		Name string `json:"name"`
	}
	decode(t, res, &ingredients)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "salt", ingredients[0].Name)

	res = a.do(http.MethodGet, "/api/tags/"+uuid.NewString(), "", nil)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)

	res = a.do(http.MethodPost, "/api/users/"+readerID+"/subscribe", readerToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	res = a.do(http.MethodPost, "/api/users/"+authorID+"/subscribe", readerToken, nil)
	assert.Equal(t, fiber.StatusCreated, res.StatusCode)

	res = a.do(http.MethodGet, "/api/users/subscriptions?recipes_limit=2", readerToken, nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	var subs struct {
		Count int64 `json:"count"`
	}
	decode(t, res, &subs)
	assert.Equal(t, int64(1), subs.Count)

	res = a.do(http.MethodDelete, "/api/users/"+authorID+"/subscribe", readerToken, nil)
	assert.Equal(t, fiber.StatusNoContent, res.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	a := newTestApp(t)

	res := a.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), "go_goroutines")
}

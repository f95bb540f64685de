package routes

import (
	"foodgram/internal/api/handlers"
	"foodgram/internal/middleware"
	"foodgram/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	RecipeHandler   handlers.RecipeHandler
	CatalogHandler  handlers.CatalogHandler
	LinkHandler     handlers.LinkHandler
	ShoppingHandler handlers.ShoppingHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.User()
	c.Catalog()
	c.Recipe()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth/token")
	{
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/logout", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Logout)
	}
}

func (c *Config) User() {
	authRequired := c.Middleware.AuthMiddleware(c.JWTService)
	user := c.App.Group("/api/users")
	// fixed paths first, /:id would shadow them
	{
		user.Post("", c.UserHandler.Register)
		user.Get("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.UserHandler.GetUsers)
		user.Get("/me", authRequired, c.UserHandler.Me)
		user.Put("/me/avatar", authRequired, c.UserHandler.UpdateAvatar)
		user.Delete("/me/avatar", authRequired, c.UserHandler.DeleteAvatar)
		user.Post("/set_password", authRequired, c.UserHandler.SetPassword)
		user.Get("/subscriptions", authRequired, c.UserHandler.GetSubscriptions)
		user.Get("/:id", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.UserHandler.GetUserByID)
		user.Post("/:id/subscribe", authRequired, c.UserHandler.Subscribe)
		user.Delete("/:id/subscribe", authRequired, c.UserHandler.Unsubscribe)
	}
}

func (c *Config) Catalog() {
	c.App.Get("/api/tags", c.CatalogHandler.GetTags)
	c.App.Get("/api/tags/:id", c.CatalogHandler.GetTagByID)
	c.App.Get("/api/ingredients", c.CatalogHandler.GetIngredients)
	c.App.Get("/api/ingredients/:id", c.CatalogHandler.GetIngredientByID)
}

func (c *Config) Recipe() {
	authRequired := c.Middleware.AuthMiddleware(c.JWTService)
	recipes := c.App.Group("/api/recipes")
	{
		recipes.Get("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipes)
		recipes.Post("", authRequired, c.RecipeHandler.CreateRecipe)
		recipes.Get("/download_shopping_cart", authRequired, c.ShoppingHandler.DownloadShoppingCart)
		recipes.Get("/:id", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipeByID)
		recipes.Patch("/:id", authRequired, c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", authRequired, c.RecipeHandler.DeleteRecipe)
		recipes.Get("/:id/get-link", c.LinkHandler.GetLink)
		recipes.Post("/:id/favorite", authRequired, c.RecipeHandler.AddFavourite)
		recipes.Delete("/:id/favorite", authRequired, c.RecipeHandler.RemoveFavourite)
		recipes.Post("/:id/shopping_cart", authRequired, c.RecipeHandler.AddToShoppingCart)
		recipes.Delete("/:id/shopping_cart", authRequired, c.RecipeHandler.RemoveFromShoppingCart)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/s/:token", c.LinkHandler.Redirect)
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"foodgram/internal/api/handlers"
	"foodgram/internal/api/routes"
	"foodgram/internal/middleware"
	"foodgram/internal/utils"
	"foodgram/internal/utils/mailing"
	"foodgram/internal/utils/storage"
	"foodgram/pkg/ingredient"
	"foodgram/pkg/jwt"
	"foodgram/pkg/recipe"
	"foodgram/pkg/shopping"
	"foodgram/pkg/shortlink"
	"foodgram/pkg/tag"
	"foodgram/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

const defaultRateLimit = 10

// Dependencies holds the outside services the app talks to. Zero fields are
// filled from configuration.
type Dependencies struct {
	S3         storage.AwsS3
	Mailer     mailing.Mailer
	JWTService jwt.JWTService
	LogOutput  io.Writer
	// RateLimit is requests per second per client; negative disables it.
	RateLimit int
}

func NewApp(db *gorm.DB) (*fiber.App, error) {
	return NewAppWithDependencies(db, Dependencies{})
}

func openLogFile() (io.Writer, error) {
	dir := utils.GetConfig("LOG_DIR")
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	return os.OpenFile(
		filepath.Join(dir, "app.log"),
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
}

func NewAppWithDependencies(db *gorm.DB, deps Dependencies) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: deps.LogOutput == nil,
	})
	validator := utils.Validate

	// setting up logging and limiter
	if deps.LogOutput == nil {
		file, err := openLogFile()
		if err != nil {
			log.Errorf("error opening log file: %v", err)
			return nil, err
		}
		deps.LogOutput = file
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     deps.LogOutput,
	}))

	if deps.RateLimit == 0 {
		deps.RateLimit = defaultRateLimit
	}
	if deps.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        deps.RateLimit,
			Expiration: 1 * time.Second,
		}))
	}

	// utils
	if deps.S3 == nil {
		deps.S3 = storage.NewAwsS3()
	}
	if deps.Mailer == nil {
		deps.Mailer = mailing.NewMailer()
	}
	if deps.JWTService == nil {
		deps.JWTService = jwt.NewJWTService()
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	tagRepository := tag.NewTagRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	linkRepository := shortlink.NewLinkRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)

	// Service
	userService := user.NewUserService(userRepository, deps.JWTService, deps.S3, deps.Mailer)
	tagService := tag.NewTagService(tagRepository)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, userRepository, tagRepository, ingredientRepository, deps.S3)
	linkService := shortlink.NewLinkService(linkRepository)
	shoppingService := shopping.NewShoppingService(shoppingRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	catalogHandler := handlers.NewCatalogHandler(tagService, ingredientService)
	linkHandler := handlers.NewLinkHandler(linkService)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		RecipeHandler:   recipeHandler,
		CatalogHandler:  catalogHandler,
		LinkHandler:     linkHandler,
		ShoppingHandler: shoppingHandler,
		Middleware:      middleware.NewMiddleware(userRepository),
		JWTService:      deps.JWTService,
	}
	routesConfig.Setup()
	return app, nil
}

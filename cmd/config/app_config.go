package config

import (
	"PantryTrack-Backend/internal/api/handlers"
	"PantryTrack-Backend/internal/api/routes"
	"PantryTrack-Backend/internal/middleware"
	"PantryTrack-Backend/internal/utils"
	"PantryTrack-Backend/internal/utils/fatsecret"
	"PantryTrack-Backend/internal/utils/gemini"
	"PantryTrack-Backend/internal/utils/storage"
	"PantryTrack-Backend/pkg/eatingout"
	"PantryTrack-Backend/pkg/inventory"
	"PantryTrack-Backend/pkg/jwt"
	"PantryTrack-Backend/pkg/media"
	"PantryTrack-Backend/pkg/nutrition"
	"PantryTrack-Backend/pkg/receipt"
	"PantryTrack-Backend/pkg/scan"
	"PantryTrack-Backend/pkg/shoppinglist"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         25 * 1024 * 1024,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	ai := gemini.NewClient()
	foodDB := fatsecret.NewClient()

	// Repository
	inventoryRepository := inventory.NewInventoryRepository(db)
	eatingOutRepository := eatingout.NewEatingOutRepository(db)
	receiptRepository := receipt.NewReceiptRepository(db)
	shoppingListRepository := shoppinglist.NewShoppingListRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	scanService := scan.NewScanService(ai)
	inventoryService := inventory.NewInventoryService(inventoryRepository)
	eatingOutService := eatingout.NewEatingOutService(eatingOutRepository, ai, s3)
	receiptService := receipt.NewReceiptService(receiptRepository, ai)
	nutritionService := nutrition.NewNutritionService(foodDB)
	shoppingListService := shoppinglist.NewShoppingListService(shoppingListRepository, inventoryRepository, ai)
	mediaService := media.NewMediaService(s3)

	// Handler
	scanHandler := handlers.NewScanHandler(scanService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	eatingOutHandler := handlers.NewEatingOutHandler(eatingOutService, validator)
	receiptHandler := handlers.NewReceiptHandler(receiptService, validator)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService)
	shoppingListHandler := handlers.NewShoppingListHandler(shoppingListService, validator)
	mediaHandler := handlers.NewMediaHandler(mediaService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		ScanHandler:         scanHandler,
		InventoryHandler:    inventoryHandler,
		EatingOutHandler:    eatingOutHandler,
		ReceiptHandler:      receiptHandler,
		NutritionHandler:    nutritionHandler,
		ShoppingListHandler: shoppingListHandler,
		MediaHandler:        mediaHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

package routes

import (
	"PantryTrack-Backend/internal/api/handlers"
	"PantryTrack-Backend/internal/middleware"
	"PantryTrack-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	ScanHandler         handlers.ScanHandler
	InventoryHandler    handlers.InventoryHandler
	EatingOutHandler    handlers.EatingOutHandler
	ReceiptHandler      handlers.ReceiptHandler
	NutritionHandler    handlers.NutritionHandler
	ShoppingListHandler handlers.ShoppingListHandler
	MediaHandler        handlers.MediaHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Scan()
	c.Inventory()
	c.EatingOut()
	c.Receipts()
	c.Nutrition()
	c.ShoppingList()
	c.Media()
	c.GuestRoute()
}

func (c *Config) Scan() {
	scan := c.App.Group("/api/v1/scan", c.Middleware.AuthMiddleware(c.JWTService))
	scan.Post("", c.ScanHandler.ScanItems)
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))
	inventory.Post("", c.InventoryHandler.AddItems)
	inventory.Get("", c.InventoryHandler.GetItems)
}

func (c *Config) EatingOut() {
	eatingOut := c.App.Group("/api/v1/eating-out", c.Middleware.AuthMiddleware(c.JWTService))
	eatingOut.Post("", c.EatingOutHandler.LogMeal)
	eatingOut.Get("", c.EatingOutHandler.GetLogs)
}

func (c *Config) Receipts() {
	receipts := c.App.Group("/api/v1/receipts", c.Middleware.AuthMiddleware(c.JWTService))
	receipts.Post("", c.ReceiptHandler.ParseReceipt)
	receipts.Get("", c.ReceiptHandler.GetReceipts)
	receipts.Delete("/:id", c.ReceiptHandler.DeleteReceipt)
}

func (c *Config) Nutrition() {
	authed := c.Middleware.AuthMiddleware(c.JWTService)

	nutrition := c.App.Group("/api/v1/nutrition", authed)
	nutrition.Get("/:id", c.NutritionHandler.GetFoodNutrition)

	foods := c.App.Group("/api/v1/foods", authed)
	foods.Get("/search", c.NutritionHandler.SearchFoods)
	foods.Get("/autocomplete", c.NutritionHandler.Autocomplete)
}

func (c *Config) ShoppingList() {
	shoppingList := c.App.Group("/api/v1/shopping-list", c.Middleware.AuthMiddleware(c.JWTService))
	shoppingList.Get("", c.ShoppingListHandler.GetActiveList)
	shoppingList.Post("/bulk-add", c.ShoppingListHandler.BulkAdd)
	shoppingList.Post("/from-meal", c.ShoppingListHandler.GenerateFromMeal)
	shoppingList.Post("/alternatives", c.ShoppingListHandler.SuggestAlternatives)
}

func (c *Config) Media() {
	photos := c.App.Group("/api/v1/photos", c.Middleware.AuthMiddleware(c.JWTService))
	photos.Post("", c.MediaHandler.UploadPhoto)
	photos.Delete("", c.MediaHandler.DeletePhoto)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

package handlers

import (
	"PantryTrack-Backend/domain"
	"PantryTrack-Backend/internal/api/presenters"
	"PantryTrack-Backend/pkg/nutrition"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	NutritionHandler interface {
		GetFoodNutrition(c *fiber.Ctx) error
		SearchFoods(c *fiber.Ctx) error
		Autocomplete(c *fiber.Ctx) error
	}

	nutritionHandler struct {
		nutritionService nutrition.NutritionService
	}
)

func NewNutritionHandler(nutritionService nutrition.NutritionService) NutritionHandler {
	return &nutritionHandler{nutritionService: nutritionService}
}

func (h *nutritionHandler) GetFoodNutrition(c *fiber.Ctx) error {
	foodID := c.Params("id")

	// detailed=true passes through the provider's full serving list.
	if c.QueryBool("detailed") {
		food, err := h.nutritionService.GetFoodDetailed(c.Context(), foodID)
		if err != nil {
			return nutritionError(c, domain.MessageFailedGetNutrition, err)
		}
		return presenters.SuccessResponse(c, food, fiber.StatusOK, domain.MessageSuccessGetNutrition)
	}

	profile, err := h.nutritionService.GetFoodNutrition(c.Context(), foodID)
	if err != nil {
		return nutritionError(c, domain.MessageFailedGetNutrition, err)
	}

	return presenters.SuccessResponse(c, profile, fiber.StatusOK, domain.MessageSuccessGetNutrition)
}

func (h *nutritionHandler) SearchFoods(c *fiber.Ctx) error {
	query := c.Query("q")

	page, err := strconv.Atoi(c.Query("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}

	max, err := strconv.Atoi(c.Query("max", "20"))
	if err != nil || max < 1 {
		max = 20
	}

	res, err := h.nutritionService.SearchFoods(c.Context(), query, page, max)
	if err != nil {
		return nutritionError(c, domain.MessageFailedSearchFoods, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchFoods)
}

func (h *nutritionHandler) Autocomplete(c *fiber.Ctx) error {
	query := c.Query("q")

	max, err := strconv.Atoi(c.Query("max", "0"))
	if err != nil || max < 0 {
		max = 0
	}

	res, err := h.nutritionService.Autocomplete(c.Context(), query, max)
	if err != nil {
		return nutritionError(c, domain.MessageFailedSearchFoods, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchFoods)
}

func nutritionError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrFoodNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, message, err)
	case errors.Is(err, domain.ErrNutritionServiceUnavailable):
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageNutritionNotConfigured, err)
	case errors.Is(err, domain.ErrMissingSearchQuery):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	default:
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
	}
}

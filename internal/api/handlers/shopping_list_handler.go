package handlers

import (
	"PantryTrack-Backend/domain"
	"PantryTrack-Backend/internal/api/presenters"
	"PantryTrack-Backend/pkg/shoppinglist"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingListHandler interface {
		GetActiveList(c *fiber.Ctx) error
		BulkAdd(c *fiber.Ctx) error
		GenerateFromMeal(c *fiber.Ctx) error
		SuggestAlternatives(c *fiber.Ctx) error
	}

	shoppingListHandler struct {
		shoppingListService shoppinglist.ShoppingListService
		validator           *validator.Validate
	}
)

func NewShoppingListHandler(shoppingListService shoppinglist.ShoppingListService, validator *validator.Validate) ShoppingListHandler {
	return &shoppingListHandler{
		shoppingListService: shoppingListService,
		validator:           validator,
	}
}

func (h *shoppingListHandler) GetActiveList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.shoppingListService.GetActiveList(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingListHandler) BulkAdd(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.BulkAddRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBulkAddItems, err)
	}

	res, err := h.shoppingListService.BulkAdd(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedBulkAddItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessBulkAddItems)
}

func (h *shoppingListHandler) GenerateFromMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.FromMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateFromMeal, err)
	}

	res, err := h.shoppingListService.GenerateFromMeal(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrAIServiceDisabled) {
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedGenerateFromMeal, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGenerateFromMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateFromMeal)
}

func (h *shoppingListHandler) SuggestAlternatives(c *fiber.Ctx) error {
	req := new(domain.SuggestAlternativesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSuggestAlternatives, err)
	}

	res, err := h.shoppingListService.SuggestAlternatives(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrAIServiceDisabled) {
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedSuggestAlternatives, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSuggestAlternatives, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSuggestAlternatives)
}

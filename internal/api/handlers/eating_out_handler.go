package handlers

import (
	"PantryTrack-Backend/domain"
	"PantryTrack-Backend/internal/api/presenters"
	"PantryTrack-Backend/pkg/eatingout"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	EatingOutHandler interface {
		LogMeal(c *fiber.Ctx) error
		GetLogs(c *fiber.Ctx) error
	}

	eatingOutHandler struct {
		eatingOutService eatingout.EatingOutService
		validator        *validator.Validate
	}
)

func NewEatingOutHandler(eatingOutService eatingout.EatingOutService, validator *validator.Validate) EatingOutHandler {
	return &eatingOutHandler{
		eatingOutService: eatingOutService,
		validator:        validator,
	}
}

func (h *eatingOutHandler) LogMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LogMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.eatingOutService.LogMeal(c.Context(), *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		case errors.Is(err, domain.ErrAIServiceDisabled):
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedLogMeal, err)
		case errors.Is(err, domain.ErrMealSaveFailed):
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveMeal, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogMeal, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogMeal)
}

func (h *eatingOutHandler) GetLogs(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	logs, err := h.eatingOutService.GetLogs(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, logs, fiber.StatusOK, domain.MessageSuccessGetMeals)
}

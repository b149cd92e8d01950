package handlers

import (
	"PantryTrack-Backend/domain"
	"PantryTrack-Backend/internal/api/presenters"
	"PantryTrack-Backend/pkg/scan"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ScanHandler interface {
		ScanItems(c *fiber.Ctx) error
	}

	scanHandler struct {
		scanService scan.ScanService
		validator   *validator.Validate
	}
)

func NewScanHandler(scanService scan.ScanService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		scanService: scanService,
		validator:   validator,
	}
}

func (h *scanHandler) ScanItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ScanItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanItems, err)
	}

	res, err := h.scanService.ScanImages(c.Context(), *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoImagesProvided), errors.Is(err, domain.ErrInvalidLocation):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanItems, err)
		case errors.Is(err, domain.ErrAIServiceDisabled):
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedScanItems, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedScanItems, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScanItems)
}

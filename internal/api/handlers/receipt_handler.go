package handlers

import (
	"PantryTrack-Backend/domain"
	"PantryTrack-Backend/internal/api/presenters"
	"PantryTrack-Backend/pkg/receipt"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReceiptHandler interface {
		ParseReceipt(c *fiber.Ctx) error
		GetReceipts(c *fiber.Ctx) error
		DeleteReceipt(c *fiber.Ctx) error
	}

	receiptHandler struct {
		receiptService receipt.ReceiptService
		validator      *validator.Validate
	}
)

func NewReceiptHandler(receiptService receipt.ReceiptService, validator *validator.Validate) ReceiptHandler {
	return &receiptHandler{
		receiptService: receiptService,
		validator:      validator,
	}
}

func (h *receiptHandler) ParseReceipt(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ParseReceiptRequest)

	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.File = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParseReceipt, err)
	}

	res, err := h.receiptService.ParseReceipt(c.Context(), *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedFileType):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParseReceipt, err)
		case errors.Is(err, domain.ErrAIServiceDisabled):
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedParseReceipt, err)
		case errors.Is(err, domain.ErrReceiptSaveFailed):
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveReceipt, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedParseReceipt, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessParseReceipt)
}

func (h *receiptHandler) GetReceipts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	res, err := h.receiptService.GetReceipts(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReceipts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceipts)
}

func (h *receiptHandler) DeleteReceipt(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	receiptID := c.Params("id")

	if err := h.receiptService.DeleteReceipt(c.Context(), receiptID, userID); err != nil {
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteReceipt, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteReceipt, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReceipt)
}

package handlers

import (
	"PantryTrack-Backend/domain"
	"PantryTrack-Backend/internal/api/presenters"
	"PantryTrack-Backend/pkg/media"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MediaHandler interface {
		UploadPhoto(c *fiber.Ctx) error
		DeletePhoto(c *fiber.Ctx) error
	}

	mediaHandler struct {
		mediaService media.MediaService
		validator    *validator.Validate
	}
)

func NewMediaHandler(mediaService media.MediaService, validator *validator.Validate) MediaHandler {
	return &mediaHandler{
		mediaService: mediaService,
		validator:    validator,
	}
}

func (h *mediaHandler) UploadPhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadPhotoRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
	}

	res, err := h.mediaService.UploadPhoto(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidImageData) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadPhoto, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadPhoto)
}

func (h *mediaHandler) DeletePhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.DeletePhotoRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePhoto, err)
	}

	if err := h.mediaService.DeletePhoto(c.Context(), *req, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPhotoURL):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePhoto, err)
		case errors.Is(err, domain.ErrPhotoNotOwned):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedDeletePhoto, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeletePhoto, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePhoto)
}

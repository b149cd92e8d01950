package domain

import "errors"

var (
	MessageSuccessUploadPhoto = "photo uploaded successfully"
	MessageSuccessDeletePhoto = "photo deleted successfully"
	MessageFailedUploadPhoto  = "failed to upload photo"
	MessageFailedDeletePhoto  = "failed to delete photo"

	ErrInvalidImageData   = errors.New("invalid image data")
	ErrPhotoNotOwned      = errors.New("photo does not belong to the caller")
	ErrInvalidPhotoURL    = errors.New("URL does not point at managed storage")
)

type (
	UploadPhotoRequest struct {
		Image       string `json:"image" validate:"required"`
		ContentType string `json:"content_type"`
	}

	UploadPhotoResponse struct {
		URL string `json:"url"`
	}

	DeletePhotoRequest struct {
		URL string `json:"url" validate:"required,url"`
	}
)

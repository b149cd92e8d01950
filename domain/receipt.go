package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessParseReceipt  = "receipt parsed successfully"
	MessageSuccessGetReceipts   = "receipts retrieved successfully"
	MessageSuccessDeleteReceipt = "receipt deleted"
	MessageFailedParseReceipt   = "Failed to parse receipt"
	MessageFailedSaveReceipt    = "Failed to save receipt"
	MessageFailedGetReceipts    = "failed to retrieve receipts"
	MessageFailedDeleteReceipt  = "failed to delete receipt"

	ErrReceiptParsingFailed = errors.New("receipt parsing failed")
	ErrReceiptSaveFailed    = errors.New("receipt could not be saved")
	ErrUnsupportedFileType  = errors.New("file must be a PDF or an image")
)

type (
	ParseReceiptRequest struct {
		File *multipart.FileHeader `json:"file" form:"file" validate:"required"`
	}

	// ParsedReceipt is what the OCR model extracts regardless of whether the
	// source document was a PDF or an image.
	ParsedReceipt struct {
		StoreName    string              `json:"store_name"`
		StoreAddress string              `json:"store_address"`
		Date         string              `json:"date"`
		Subtotal     float64             `json:"subtotal"`
		Tax          float64             `json:"tax"`
		Total        float64             `json:"total"`
		Items        []ParsedReceiptItem `json:"items"`
	}

	ParsedReceiptItem struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
		Price    float64 `json:"price"`
		Category string  `json:"category"`
	}

	ReceiptItemResponse struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit,omitempty"`
		Price    float64 `json:"price"`
		Category string  `json:"category,omitempty"`
	}

	ReceiptResponse struct {
		ID           string                `json:"id"`
		StoreName    string                `json:"store_name"`
		StoreAddress string                `json:"store_address,omitempty"`
		ReceiptDate  time.Time             `json:"receipt_date"`
		Subtotal     float64               `json:"subtotal"`
		Tax          float64               `json:"tax"`
		Total        float64               `json:"total"`
		Items        []ReceiptItemResponse `json:"items"`
		// ItemsSaved is false when line items could not be persisted even
		// though the receipt row was committed.
		ItemsSaved bool      `json:"items_saved"`
		CreatedAt  time.Time `json:"created_at"`
	}

	ReceiptSummary struct {
		TotalSpent     float64 `json:"total_spent"`
		ReceiptCount   int64   `json:"receipt_count"`
		ThisMonthSpent float64 `json:"this_month_spent"`
		AvgPerTrip     float64 `json:"avg_per_trip"`
	}

	ReceiptListResponse struct {
		Receipts []ReceiptResponse `json:"receipts"`
		Summary  ReceiptSummary    `json:"summary"`
	}
)

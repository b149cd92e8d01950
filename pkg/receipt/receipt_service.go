package receipt

import (
	"PantryTrack-Backend/domain"
	"PantryTrack-Backend/entities"
	"PantryTrack-Backend/internal/utils/gemini"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	ReceiptService interface {
		ParseReceipt(ctx context.Context, req domain.ParseReceiptRequest, userID string) (domain.ReceiptResponse, error)
		GetReceipts(ctx context.Context, userID string, page, limit int) (domain.ReceiptListResponse, error)
		DeleteReceipt(ctx context.Context, id string, userID string) error
	}

	receiptService struct {
		receiptRepository ReceiptRepository
		ai                *gemini.Client
	}
)

func NewReceiptService(receiptRepository ReceiptRepository, ai *gemini.Client) ReceiptService {
	return &receiptService{
		receiptRepository: receiptRepository,
		ai:                ai,
	}
}

const receiptPromptImage = "Extract the contents of this grocery receipt photo and respond ONLY with a valid JSON object containing exactly these fields: " +
	"'store_name' (string), 'store_address' (string), 'date' (string in YYYY-MM-DD format), " +
	"'subtotal' (number), 'tax' (number), 'total' (number), " +
	"'items' (array of objects with 'name', 'quantity' (number), 'unit' (string), 'price' (number), 'category' (string)). " +
	"Prices are line totals. Do not include any explanations, markdown formatting, or extra text."

const receiptPromptPDF = "Extract the contents of this grocery receipt PDF document and respond ONLY with a valid JSON object containing exactly these fields: " +
	"'store_name' (string), 'store_address' (string), 'date' (string in YYYY-MM-DD format), " +
	"'subtotal' (number), 'tax' (number), 'total' (number), " +
	"'items' (array of objects with 'name', 'quantity' (number), 'unit' (string), 'price' (number), 'category' (string)). " +
	"Prices are line totals. Do not include any explanations, markdown formatting, or extra text."

func (s *receiptService) ParseReceipt(ctx context.Context, req domain.ParseReceiptRequest, userID string) (domain.ReceiptResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ReceiptResponse{}, domain.ErrParseUUID
	}

	mimeType, err := detectFileType(req.File)
	if err != nil {
		return domain.ReceiptResponse{}, err
	}
	if !s.ai.Configured() {
		return domain.ReceiptResponse{}, domain.ErrAIServiceDisabled
	}

	fileData, err := readFile(req.File)
	if err != nil {
		return domain.ReceiptResponse{}, fmt.Errorf("%w: %v", domain.ErrReceiptParsingFailed, err)
	}

	parsed, err := s.extractReceipt(ctx, fileData, mimeType)
	if err != nil {
		return domain.ReceiptResponse{}, fmt.Errorf("%w: %v", domain.ErrReceiptParsingFailed, err)
	}

	receiptDate := time.Now()
	if parsed.Date != "" {
		if d, parseErr := time.Parse("2006-01-02", parsed.Date); parseErr == nil {
			receiptDate = d
		}
	}

	receipt := &entities.Receipt{
		ID:           uuid.New(),
		UserID:       userUUID,
		StoreName:    parsed.StoreName,
		StoreAddress: parsed.StoreAddress,
		ReceiptDate:  receiptDate,
		Subtotal:     parsed.Subtotal,
		Tax:          parsed.Tax,
		Total:        parsed.Total,
	}

	// The receipt row commits first; losing it is a hard failure.
	if err := s.receiptRepository.CreateReceipt(ctx, receipt); err != nil {
		return domain.ReceiptResponse{}, fmt.Errorf("%w: %v", domain.ErrReceiptSaveFailed, err)
	}

	items := make([]*entities.ReceiptItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		items = append(items, &entities.ReceiptItem{
			ID:        uuid.New(),
			ReceiptID: receipt.ID,
			Name:      item.Name,
			Quantity:  quantity,
			Unit:      item.Unit,
			Price:     item.Price,
			Category:  item.Category,
		})
	}

	// Line items are best-effort once the receipt exists. An insert failure
	// leaves the receipt committed without items and the response says so.
	itemsSaved := true
	if err := s.receiptRepository.CreateReceiptItems(ctx, items); err != nil {
		log.Printf("Error saving receipt items for receipt %s: %v", receipt.ID, err)
		itemsSaved = false
		items = nil
	}

	receipt.Items = items
	response := toReceiptResponse(receipt)
	response.ItemsSaved = itemsSaved
	return response, nil
}

func (s *receiptService) extractReceipt(ctx context.Context, fileData []byte, mimeType string) (domain.ParsedReceipt, error) {
	// PDFs and photos enter the model differently but come back in one shape.
	prompt := receiptPromptImage
	if mimeType == "application/pdf" {
		prompt = receiptPromptPDF
	}

	responseText, err := s.ai.GenerateContent(ctx, []gemini.Part{
		{Text: prompt},
		{MIMEType: mimeType, Data: base64.StdEncoding.EncodeToString(fileData)},
	}, 0.1)
	if err != nil {
		return domain.ParsedReceipt{}, err
	}

	jsonText, err := gemini.ExtractJSONObject(responseText)
	if err != nil {
		return domain.ParsedReceipt{}, err
	}

	var parsed domain.ParsedReceipt
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return domain.ParsedReceipt{}, fmt.Errorf("failed to parse receipt extraction: %v", err)
	}

	if parsed.StoreName == "" {
		parsed.StoreName = "Unknown Store"
	}

	return parsed, nil
}

func (s *receiptService) GetReceipts(ctx context.Context, userID string, page, limit int) (domain.ReceiptListResponse, error) {
	receipts, _, err := s.receiptRepository.GetReceipts(ctx, userID, page, limit)
	if err != nil {
		return domain.ReceiptListResponse{}, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	totalSpent, receiptCount, monthSpent, err := s.receiptRepository.GetSpendingAggregates(ctx, userID, monthStart)
	if err != nil {
		return domain.ReceiptListResponse{}, err
	}

	avgPerTrip := 0.0
	if receiptCount > 0 {
		avgPerTrip = totalSpent / float64(receiptCount)
	}

	response := domain.ReceiptListResponse{
		Receipts: make([]domain.ReceiptResponse, 0, len(receipts)),
		Summary: domain.ReceiptSummary{
			TotalSpent:     totalSpent,
			ReceiptCount:   receiptCount,
			ThisMonthSpent: monthSpent,
			AvgPerTrip:     avgPerTrip,
		},
	}

	for _, r := range receipts {
		item := toReceiptResponse(r)
		item.ItemsSaved = true
		response.Receipts = append(response.Receipts, item)
	}

	return response, nil
}

func (s *receiptService) DeleteReceipt(ctx context.Context, id string, userID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	return s.receiptRepository.DeleteReceipt(ctx, id, userID)
}

func toReceiptResponse(receipt *entities.Receipt) domain.ReceiptResponse {
	items := make([]domain.ReceiptItemResponse, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		items = append(items, domain.ReceiptItemResponse{
			ID:       item.ID.String(),
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			Price:    item.Price,
			Category: item.Category,
		})
	}

	return domain.ReceiptResponse{
		ID:           receipt.ID.String(),
		StoreName:    receipt.StoreName,
		StoreAddress: receipt.StoreAddress,
		ReceiptDate:  receipt.ReceiptDate,
		Subtotal:     receipt.Subtotal,
		Tax:          receipt.Tax,
		Total:        receipt.Total,
		Items:        items,
		CreatedAt:    receipt.CreatedAt,
	}
}

func detectFileType(file *multipart.FileHeader) (string, error) {
	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		switch ext {
		case ".pdf":
			mimeType = "application/pdf"
		case ".png":
			mimeType = "image/png"
		case ".webp":
			mimeType = "image/webp"
		case ".jpg", ".jpeg":
			mimeType = "image/jpeg"
		}
	}

	switch mimeType {
	case "application/pdf", "image/jpeg", "image/png", "image/webp":
		return mimeType, nil
	}
	return "", domain.ErrUnsupportedFileType
}

func readFile(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

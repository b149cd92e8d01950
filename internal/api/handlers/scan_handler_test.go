package handlers

import (
	"PantryTrack-Backend/domain"
	"PantryTrack-Backend/internal/middleware"
	"PantryTrack-Backend/internal/utils"
	"PantryTrack-Backend/pkg/jwt"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofiber/fiber/v2"
)

type scanServiceStub struct {
	res domain.ScanItemsResponse
	err error
}

func (s *scanServiceStub) ScanImages(_ context.Context, _ domain.ScanItemsRequest, _ string) (domain.ScanItemsResponse, error) {
	return s.res, s.err
}

func newScanApp(stub *scanServiceStub) (*fiber.App, jwt.JWTService) {
	utils.InitValidator()

	app := fiber.New()
	jwtService := jwt.NewJWTService()
	mw := middleware.NewMiddleware()
	handler := NewScanHandler(stub, utils.Validate)

	app.Post("/api/v1/scan", mw.AuthMiddleware(jwtService), handler.ScanItems)
	return app, jwtService
}

func TestScanRequiresAuth(t *testing.T) {
	app, _ := newScanApp(&scanServiceStub{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestScanRejectsUnknownLocation(t *testing.T) {
	app, jwtService := newScanApp(&scanServiceStub{})
	token := jwtService.GenerateTokenUser("a2c5d7b1-1111-2222-3333-444455556666", domain.RoleUser)

	body := `{"images":["aGVsbG8="],"location":"garage"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestScanReturnsServiceResult(t *testing.T) {
	stub := &scanServiceStub{
		res: domain.ScanItemsResponse{
			Items: []domain.DetectedItem{
				{Name: "Milk", Category: "dairy", Quantity: 1, Confidence: 0.93, Location: "fridge"},
			},
			Summary: domain.ScanSummary{TotalItems: 1, HighConfidence: 1},
		},
	}
	app, jwtService := newScanApp(stub)
	token := jwtService.GenerateTokenUser("a2c5d7b1-1111-2222-3333-444455556666", domain.RoleUser)

	body := `{"images":["aGVsbG8="],"location":"fridge"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Items   []domain.DetectedItem `json:"items"`
			Summary domain.ScanSummary    `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Status)
	require.Len(t, envelope.Data.Items, 1)
	assert.Equal(t, "Milk", envelope.Data.Items[0].Name)
	assert.Equal(t, 1, envelope.Data.Summary.HighConfidence)
}

func TestScanServiceUnavailable(t *testing.T) {
	app, jwtService := newScanApp(&scanServiceStub{err: domain.ErrAIServiceDisabled})
	token := jwtService.GenerateTokenUser("a2c5d7b1-1111-2222-3333-444455556666", domain.RoleUser)

	body := `{"images":["aGVsbG8="],"location":"fridge"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

package eatingout

import (
	"PantryTrack-Backend/domain"
	"PantryTrack-Backend/entities"
	"PantryTrack-Backend/internal/utils/gemini"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eatingOutRepoMock struct {
	created   []*entities.EatingOutLog
	createErr error
	logs      []*entities.EatingOutLog
}

func (m *eatingOutRepoMock) CreateLog(_ context.Context, log *entities.EatingOutLog) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, log)
	return nil
}

func (m *eatingOutRepoMock) GetRecentLogs(_ context.Context, _ string, limit int) ([]*entities.EatingOutLog, error) {
	if len(m.logs) > limit {
		return m.logs[:limit], nil
	}
	return m.logs, nil
}

type s3Stub struct {
	uploadErr error
}

func (s *s3Stub) UploadUserFile(_ context.Context, userID string, _ []byte, _ string, _ ...string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	return userID + "/1-abcd.jpg", nil
}

func (s *s3Stub) DeleteFile(_ context.Context, _ string) error { return nil }

func (s *s3Stub) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}

func (s *s3Stub) GetObjectKeyFromLink(link string) string { return "" }

func fakeMealServer(t *testing.T, modelText string, status int) *gemini.Client {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			http.Error(w, "upstream failure", status)
			return
		}
		quoted, _ := json.Marshal(modelText)
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":` + string(quoted) + `}]}}]}`))
	}))
	t.Cleanup(ts.Close)

	return &gemini.Client{APIKey: "k", Model: "m", BaseURL: ts.URL, HTTPClient: ts.Client()}
}

const userID = "a2c5d7b1-1111-2222-3333-444455556666"

func TestLogMealPersistsAnalysis(t *testing.T) {
	t.Parallel()

	repo := &eatingOutRepoMock{}
	ai := fakeMealServer(t, `{"meal_name":"Chicken Teriyaki Bowl","calories":720,"protein_g":42,"carbs_g":80,"fat_g":22,"fiber_g":5,"vegetable_servings":1.5,"components":["chicken","rice","broccoli"],"health_assessment":"moderate","ai_notes":"Reasonable balance, watch the sauce."}`, http.StatusOK)
	svc := NewEatingOutService(repo, ai, &s3Stub{})

	before := time.Now()
	res, err := svc.LogMeal(context.Background(), domain.LogMealRequest{Image: "aGVsbG8="}, userID)
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	saved := repo.created[0]
	assert.Equal(t, "Chicken Teriyaki Bowl", saved.MealName)
	assert.Equal(t, 720.0, saved.Calories)
	assert.False(t, saved.EatenAt.Before(before))

	assert.Equal(t, []string{"chicken", "rice", "broccoli"}, res.Components)
	assert.Equal(t, "moderate", res.HealthAssessment)
	assert.NotEmpty(t, res.PhotoURL)
}

func TestLogMealAnalysisFailureCreatesNothing(t *testing.T) {
	t.Parallel()

	repo := &eatingOutRepoMock{}
	ai := fakeMealServer(t, "", http.StatusInternalServerError)
	svc := NewEatingOutService(repo, ai, &s3Stub{})

	_, err := svc.LogMeal(context.Background(), domain.LogMealRequest{Image: "aGVsbG8="}, userID)
	assert.ErrorIs(t, err, domain.ErrMealAnalysisFailed)
	assert.Empty(t, repo.created)
}

func TestLogMealSaveFailureAfterAnalysis(t *testing.T) {
	t.Parallel()

	repo := &eatingOutRepoMock{createErr: errors.New("connection refused")}
	ai := fakeMealServer(t, `{"meal_name":"Salad","calories":300,"components":[]}`, http.StatusOK)
	svc := NewEatingOutService(repo, ai, &s3Stub{})

	_, err := svc.LogMeal(context.Background(), domain.LogMealRequest{Image: "aGVsbG8="}, userID)
	assert.ErrorIs(t, err, domain.ErrMealSaveFailed)
}

func TestLogMealStorageFailureIsBestEffort(t *testing.T) {
	t.Parallel()

	repo := &eatingOutRepoMock{}
	ai := fakeMealServer(t, `{"meal_name":"Pho","calories":450,"components":["noodles","broth"]}`, http.StatusOK)
	svc := NewEatingOutService(repo, ai, &s3Stub{uploadErr: errors.New("bucket gone")})

	res, err := svc.LogMeal(context.Background(), domain.LogMealRequest{Image: "aGVsbG8="}, userID)
	require.NoError(t, err)
	assert.Empty(t, res.PhotoURL)
	assert.Len(t, repo.created, 1)
}

func TestGetLogsCapsAtFifty(t *testing.T) {
	t.Parallel()

	repo := &eatingOutRepoMock{}
	for i := 0; i < 60; i++ {
		repo.logs = append(repo.logs, &entities.EatingOutLog{
			MealName:   "meal",
			Components: "[]",
			EatenAt:    time.Now().Add(-time.Duration(i) * time.Hour),
		})
	}
	svc := NewEatingOutService(repo, &gemini.Client{}, &s3Stub{})

	res, err := svc.GetLogs(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, res, 50)

	for i := 1; i < len(res); i++ {
		assert.False(t, res[i].EatenAt.After(res[i-1].EatenAt))
	}
}

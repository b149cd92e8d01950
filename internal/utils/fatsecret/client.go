package fatsecret

import (
	"PantryTrack-Backend/internal/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	defaultBaseURL  = "https://platform.fatsecret.com"
	defaultTokenURL = "https://oauth.fatsecret.com/connect/token"
)

var (
	ErrNotConfigured = errors.New("fatsecret credentials not configured")
	ErrFoodNotFound  = errors.New("food not found")
)

// Client wraps the FatSecret Platform REST API. Authentication uses the
// OAuth2 client-credentials flow; the access token is cached until expiry.
type Client struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	TokenURL     string
	HTTPClient   *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient() *Client {
	return &Client{
		ClientID:     utils.GetConfig("FATSECRET_CLIENT_ID"),
		ClientSecret: utils.GetConfig("FATSECRET_CLIENT_SECRET"),
	}
}

func (c *Client) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 10 * time.Second}
}

func (c *Client) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	tokenURL := c.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", "basic")

	req, err := http.NewRequestWithContext(ctx, "POST", tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.ClientID, c.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("fatsecret token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fatsecret token error %d: %s", resp.StatusCode, string(body))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("failed to parse fatsecret token response: %w", err)
	}

	c.accessToken = tokenResp.AccessToken
	// Renew one minute before the provider-side expiry.
	c.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn-60) * time.Second)
	return c.accessToken, nil
}

// call invokes a server.api method and decodes the JSON response into out,
// after mapping provider error envelopes to Go errors.
func (c *Client) call(ctx context.Context, params url.Values, out interface{}) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	token, err := c.getToken(ctx)
	if err != nil {
		return err
	}

	baseURL := strings.TrimRight(c.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	params.Set("format", "json")
	apiURL := fmt.Sprintf("%s/rest/server.api?%s", baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("fatsecret request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fatsecret API error %d: %s", resp.StatusCode, string(body))
	}

	var errEnvelope struct {
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &errEnvelope); err == nil && errEnvelope.Error != nil {
		// Code 106: invalid ID - the food does not exist.
		if errEnvelope.Error.Code == 106 {
			return ErrFoodNotFound
		}
		return fmt.Errorf("fatsecret error %d: %s", errEnvelope.Error.Code, errEnvelope.Error.Message)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse fatsecret response: %w", err)
	}
	return nil
}

type Serving struct {
	ServingID          string `json:"serving_id"`
	ServingDescription string `json:"serving_description"`
	MetricAmount       string `json:"metric_serving_amount"`
	MetricUnit         string `json:"metric_serving_unit"`
	Calories           string `json:"calories"`
	Protein            string `json:"protein"`
	Carbohydrate       string `json:"carbohydrate"`
	Fat                string `json:"fat"`
	Fiber              string `json:"fiber"`
	Sugar              string `json:"sugar"`
	Sodium             string `json:"sodium"`
}

type Food struct {
	FoodID      string    `json:"food_id"`
	Name        string    `json:"food_name"`
	Type        string    `json:"food_type"`
	BrandName   string    `json:"brand_name"`
	Description string    `json:"food_description"`
	URL         string    `json:"food_url"`
	Servings    []Serving `json:"-"`
}

// GetFood fetches a single food with its full serving list by provider id.
func (c *Client) GetFood(ctx context.Context, foodID string) (*Food, error) {
	params := url.Values{}
	params.Set("method", "food.get.v4")
	params.Set("food_id", foodID)

	var resp struct {
		Food *struct {
			Food
			Servings struct {
				Serving json.RawMessage `json:"serving"`
			} `json:"servings"`
		} `json:"food"`
	}
	if err := c.call(ctx, params, &resp); err != nil {
		return nil, err
	}
	if resp.Food == nil {
		return nil, ErrFoodNotFound
	}

	food := resp.Food.Food
	food.Servings = decodeOneOrMany[Serving](resp.Food.Servings.Serving)
	return &food, nil
}

type SearchResult struct {
	Foods        []Food
	TotalResults int
	PageNumber   int
	MaxResults   int
}

// SearchFoods runs a paginated free-text query. page is zero-based, matching
// the provider's convention.
func (c *Client) SearchFoods(ctx context.Context, query string, page, max int) (*SearchResult, error) {
	params := url.Values{}
	params.Set("method", "foods.search")
	params.Set("search_expression", query)
	params.Set("page_number", fmt.Sprintf("%d", page))
	params.Set("max_results", fmt.Sprintf("%d", max))

	var resp struct {
		Foods struct {
			Food         json.RawMessage `json:"food"`
			TotalResults string          `json:"total_results"`
			PageNumber   string          `json:"page_number"`
			MaxResults   string          `json:"max_results"`
		} `json:"foods"`
	}
	if err := c.call(ctx, params, &resp); err != nil {
		return nil, err
	}

	return &SearchResult{
		Foods:        decodeOneOrMany[Food](resp.Foods.Food),
		TotalResults: atoi(resp.Foods.TotalResults),
		PageNumber:   atoi(resp.Foods.PageNumber),
		MaxResults:   atoi(resp.Foods.MaxResults),
	}, nil
}

// Autocomplete returns at most max completion strings for a partial
// expression.
func (c *Client) Autocomplete(ctx context.Context, expression string, max int) ([]string, error) {
	params := url.Values{}
	params.Set("method", "foods.autocomplete.v2")
	params.Set("expression", expression)
	params.Set("max_results", fmt.Sprintf("%d", max))

	var resp struct {
		Suggestions struct {
			Suggestion json.RawMessage `json:"suggestion"`
		} `json:"suggestions"`
	}
	if err := c.call(ctx, params, &resp); err != nil {
		return nil, err
	}

	suggestions := decodeOneOrMany[string](resp.Suggestions.Suggestion)
	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	return suggestions, nil
}

// decodeOneOrMany handles the provider quirk of collapsing single-element
// arrays into a bare object.
func decodeOneOrMany[T any](raw json.RawMessage) []T {
	if len(raw) == 0 {
		return nil
	}

	var many []T
	if err := json.Unmarshal(raw, &many); err == nil {
		return many
	}

	var one T
	if err := json.Unmarshal(raw, &one); err == nil {
		return []T{one}
	}
	return nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

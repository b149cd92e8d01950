package gemini

import (
	"PantryTrack-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

var (
	ErrNotConfigured = errors.New("gemini API key or model not configured")
	ErrEmptyResponse = errors.New("gemini returned no candidates")
	ErrNoJSONFound   = errors.New("no JSON payload found in gemini response")
)

// Part is a single piece of generateContent input: either text or inline
// base64-encoded data (image or PDF).
type Part struct {
	Text     string
	MIMEType string
	Data     string
}

type Client struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		APIKey: utils.GetConfig("GEMINI_API_KEY"),
		Model:  utils.GetConfig("GEMINI_MODEL"),
	}
}

func (c *Client) Configured() bool {
	return c.APIKey != "" && c.Model != ""
}

// GenerateContent sends all parts in a single generateContent call and returns
// the raw text of the first candidate. Callers own prompt construction and
// parsing of whatever JSON the model embeds in its answer.
func (c *Client) GenerateContent(ctx context.Context, parts []Part, temperature float64) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	baseURL := strings.TrimRight(c.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	requestParts := make([]map[string]interface{}, 0, len(parts))
	for _, p := range parts {
		if p.Text != "" {
			requestParts = append(requestParts, map[string]interface{}{
				"text": p.Text,
			})
			continue
		}
		requestParts = append(requestParts, map[string]interface{}{
			"inline_data": map[string]interface{}{
				"mime_type": p.MIMEType,
				"data":      p.Data,
			},
		})
	}

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": requestParts,
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": temperature,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	geminiURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", baseURL, c.Model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSONObject pulls the single JSON object a model response is expected
// to contain, tolerating markdown fences and surrounding prose. The model is
// asked for strict JSON but does not always comply.
func ExtractJSONObject(text string) (string, error) {
	text = stripFences(text)

	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return "", ErrNoJSONFound
	}
	return match, nil
}

// ExtractJSONArray pulls a JSON array from a model response; a lone object is
// wrapped into a one-element array.
func ExtractJSONArray(text string) (string, error) {
	text = stripFences(text)

	startIdx := strings.Index(text, "[")
	endIdx := strings.LastIndex(text, "]")
	if startIdx != -1 && endIdx != -1 && startIdx < endIdx {
		return text[startIdx : endIdx+1], nil
	}

	obj, err := ExtractJSONObject(text)
	if err != nil {
		return "", err
	}
	return "[" + obj + "]", nil
}

func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

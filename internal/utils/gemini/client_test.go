package gemini

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare object",
			in:   `{"foodType":"apple"}`,
			want: `{"foodType":"apple"}`,
		},
		{
			name: "json fence",
			in:   "```json\n{\"foodType\":\"apple\"}\n```",
			want: `{"foodType":"apple"}`,
		},
		{
			name: "plain fence",
			in:   "```\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "surrounding prose",
			in:   "Here is the result:\n{\"a\":1}\nHope that helps!",
			want: `{"a":1}`,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ExtractJSONObject(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractJSONObjectNoJSON(t *testing.T) {
	t.Parallel()

	_, err := ExtractJSONObject("sorry, I cannot analyze this image")
	assert.ErrorIs(t, err, ErrNoJSONFound)
}

func TestExtractJSONArrayWrapsLoneObject(t *testing.T) {
	t.Parallel()

	got, err := ExtractJSONArray(`{"name":"milk"}`)
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"milk"}]`, got)
}

func TestGenerateContentReturnsFirstCandidateText(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "candidates": [
    {"content": {"parts": [{"text": "{\"ok\":true}"}]}}
  ]
}`))
	}))
	defer ts.Close()

	c := &Client{
		APIKey:     "test-key",
		Model:      "gemini-2.0-flash",
		BaseURL:    ts.URL,
		HTTPClient: ts.Client(),
	}

	text, err := c.GenerateContent(context.Background(), []Part{{Text: "hello"}}, 0.1)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, text)
}

func TestGenerateContentEmptyCandidates(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer ts.Close()

	c := &Client{APIKey: "k", Model: "m", BaseURL: ts.URL, HTTPClient: ts.Client()}

	_, err := c.GenerateContent(context.Background(), []Part{{Text: "hi"}}, 0.1)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenerateContentUnconfigured(t *testing.T) {
	t.Parallel()

	c := &Client{}
	_, err := c.GenerateContent(context.Background(), []Part{{Text: "hi"}}, 0.1)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGenerateContentUpstreamError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := &Client{APIKey: "k", Model: "m", BaseURL: ts.URL, HTTPClient: ts.Client()}

	_, err := c.GenerateContent(context.Background(), []Part{{Text: "hi"}}, 0.1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini API error")
}

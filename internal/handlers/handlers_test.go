package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ToriTreat/Astral/internal/shortener"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeShortener struct {
	short string
	err   error
	calls []string
}

func (f *fakeShortener) Shorten(ctx context.Context, target string) (string, error) {
	f.calls = append(f.calls, target)
	return f.short, f.err
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{"https://example.com", nil},
		{"  http://example.com/a?b=1 ", nil},
		{"", ErrEmptyURL},
		{"   ", ErrEmptyURL},
		{"example.com", ErrInvalidURL},
		{"/relative/path", ErrInvalidURL},
		{"https://", ErrInvalidURL},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ValidateURL(tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerate_RoundTrip(t *testing.T) {
	f := &fakeShortener{short: "https://is.gd/abc123"}
	h := NewHandler(f, zap.NewNop())

	link, short, err := h.Generate(context.Background(), "https://example.com/page")

	require.NoError(t, err)
	assert.Equal(t, "https://is.gd/abc123", short)
	assert.Equal(t, "[example.com/page](https://is.gd/abc123)", link)
	assert.True(t, strings.HasSuffix(link, "("+short+")"))
}

func TestGenerate_InvalidURLSkipsShortener(t *testing.T) {
	f := &fakeShortener{short: "https://is.gd/x"}
	h := NewHandler(f, zap.NewNop())

	_, _, err := h.Generate(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrInvalidURL)
	assert.Empty(t, f.calls)
}

func TestReceiveGenerate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fake       *fakeShortener
		wantStatus int
		wantResult string
		wantError  string
	}{
		{"ok", `{"url":"https://example.com"}`, &fakeShortener{short: "https://is.gd/q"}, http.StatusOK, "[example.com](https://is.gd/q)", ""},
		{"empty", `{"url":""}`, &fakeShortener{}, http.StatusBadRequest, "", "Please enter a URL"},
		{"invalid", `{"url":"foo"}`, &fakeShortener{}, http.StatusBadRequest, "", "Please enter a valid URL"},
		{"bad json", `{`, &fakeShortener{}, http.StatusBadRequest, "", "invalid JSON"},
		{"shortening failed", `{"url":"https://example.com"}`, &fakeShortener{err: shortener.ErrShorteningFailed}, http.StatusBadGateway, "", "generation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.fake, zap.NewNop())
			req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.ReceiveGenerate(rec, req)
			resp := rec.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			var got GenerateResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, tt.wantResult, got.Result)
			assert.Equal(t, tt.wantError, got.Error)
		})
	}
}

func TestReceiveURL(t *testing.T) {
	h := NewHandler(&fakeShortener{short: "https://is.gd/t"}, zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("https://example.com"))
	rec := httptest.NewRecorder()

	h.ReceiveURL(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[example.com](https://is.gd/t)", rec.Body.String())
}

func TestReceiveURL_EmptyBody(t *testing.T) {
	h := NewHandler(&fakeShortener{}, zap.NewNop())
	rec := httptest.NewRecorder()

	h.ReceiveURL(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

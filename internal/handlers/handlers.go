package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ToriTreat/Astral/internal/hyperlink"
	"go.uber.org/zap"
)

// Shortener сокращает проверенный абсолютный URL
type Shortener interface {
	Shorten(ctx context.Context, target string) (string, error)
}

var (
	ErrEmptyURL       = errors.New("Please enter a URL")
	ErrInvalidURL     = errors.New("Please enter a valid URL")
	ErrGenerateFailed = errors.New("generation failed")
)

type Handler struct {
	shortener Shortener
	logger    *zap.Logger
}

func NewHandler(s Shortener, logger *zap.Logger) *Handler {
	return &Handler{shortener: s, logger: logger}
}

type GenerateRequest struct {
	URL string `json:"url"`
}

type GenerateResponse struct {
	Result   string `json:"result,omitempty"`
	ShortURL string `json:"short_url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ValidateURL принимает только абсолютные URL со схемой и хостом
func ValidateURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyURL
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidURL
	}
	return raw, nil
}

// Generate проверяет URL, сокращает его и собирает ссылку
func (h *Handler) Generate(ctx context.Context, raw string) (link, short string, err error) {
	target, err := ValidateURL(raw)
	if err != nil {
		return "", "", err
	}
	short, err = h.shortener.Shorten(ctx, target)
	if err != nil {
		h.logger.Error("generate failed", zap.String("url", target), zap.Error(err))
		return "", "", ErrGenerateFailed
	}
	return hyperlink.Format(target, short), short, nil
}

func statusFor(err error) int {
	if errors.Is(err, ErrGenerateFailed) {
		return http.StatusBadGateway
	}
	return http.StatusBadRequest
}

func (h *Handler) ReceiveGenerate(res http.ResponseWriter, req *http.Request) {
	var body GenerateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeJSON(res, http.StatusBadRequest, GenerateResponse{Error: "invalid JSON"})
		return
	}
	link, short, err := h.Generate(req.Context(), body.URL)
	if err != nil {
		writeJSON(res, statusFor(err), GenerateResponse{Error: err.Error()})
		return
	}
	writeJSON(res, http.StatusOK, GenerateResponse{Result: link, ShortURL: short})
}

func (h *Handler) ReceiveURL(res http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(res, "BadRequest", http.StatusBadRequest)
		return
	}
	link, _, err := h.Generate(req.Context(), string(body))
	if err != nil {
		http.Error(res, err.Error(), statusFor(err))
		return
	}
	res.Header().Set("Content-Type", "text/plain")
	res.WriteHeader(http.StatusOK)
	res.Write([]byte(link))
}

func writeJSON(res http.ResponseWriter, status int, v any) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	_ = json.NewEncoder(res).Encode(v)
}

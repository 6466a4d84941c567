package shortener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultEndpoint      = "https://is.gd/create.php"
	DefaultRelayEndpoint = "https://api.allorigins.win/get"
	ShortPrefix          = "https://is.gd/"
)

// ErrShorteningFailed возвращается, когда ни одна попытка не дала короткую ссылку
var ErrShorteningFailed = errors.New("shortening failed")

type attempt struct {
	name string
	run  func(ctx context.Context, target string) (string, error)
}

// Client сокращает ссылки через is.gd, при неудаче через relay
type Client struct {
	HTTP          *http.Client
	Endpoint      string
	RelayEndpoint string
	Timeout       time.Duration
	Logger        *zap.Logger
}

func NewClient(endpoint, relay string, timeout time.Duration, logger *zap.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if relay == "" {
		relay = DefaultRelayEndpoint
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		HTTP:          &http.Client{},
		Endpoint:      endpoint,
		RelayEndpoint: relay,
		Timeout:       timeout,
		Logger:        logger,
	}
}

func (c *Client) attempts() []attempt {
	return []attempt{
		{name: "primary", run: c.primary},
		{name: "relay", run: c.relay},
	}
}

// Shorten пробует попытки по порядку, по одному разу каждую
func (c *Client) Shorten(ctx context.Context, target string) (string, error) {
	for _, a := range c.attempts() {
		short, err := a.run(ctx, target)
		if err == nil {
			return short, nil
		}
		c.Logger.Warn("shorten attempt failed",
			zap.String("attempt", a.name),
			zap.String("url", target),
			zap.Error(err),
		)
	}
	return "", ErrShorteningFailed
}

func (c *Client) createURL(target string) string {
	q := url.Values{}
	q.Set("format", "simple")
	q.Set("url", target)
	return c.Endpoint + "?" + q.Encode()
}

func (c *Client) primary(ctx context.Context, target string) (string, error) {
	status, body, err := c.get(ctx, c.createURL(target), "text/plain")
	if err != nil {
		return "", err
	}
	return validate(status, body)
}

type relayEnvelope struct {
	Contents string `json:"contents"`
}

func (c *Client) relay(ctx context.Context, target string) (string, error) {
	q := url.Values{}
	q.Set("url", c.createURL(target))
	status, body, err := c.get(ctx, c.RelayEndpoint+"?"+q.Encode(), "application/json")
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", fmt.Errorf("relay status %d", status)
	}
	var env relayEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", fmt.Errorf("decode relay body: %w", err)
	}
	return validate(status, []byte(env.Contents))
}

func (c *Client) get(ctx context.Context, rawURL, accept string) (int, []byte, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", accept)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

// validate проверяет ответ is.gd: сервис отдаёт 200 и на часть ошибок
func validate(status int, body []byte) (string, error) {
	if status < 200 || status > 299 {
		return "", fmt.Errorf("unexpected status %d", status)
	}
	short := strings.TrimSpace(string(body))
	if !strings.HasPrefix(short, ShortPrefix) {
		return "", fmt.Errorf("unexpected body %q", short)
	}
	if strings.Contains(short, "Error") {
		return "", fmt.Errorf("service error %q", short)
	}
	return short, nil
}

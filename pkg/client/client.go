// Package client - типизированный SDK консоли поверх REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// TokenSource отдаёт текущий bearer-токен. Клиент не проверяет токен
// локально: отсутствующий или истёкший токен приводит к 401 от сервера
type TokenSource interface {
	Token() (string, error)
}

// StaticTokenSource - неизменяемый токен, удобен в тестах
type StaticTokenSource string

func (s StaticTokenSource) Token() (string, error) { return string(s), nil }

// APIError - ответ сервера со статусом вне диапазона 2xx.
// Любой такой ответ всегда превращается в ошибку, частичных успехов нет
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("api error: %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("api error: %s", e.Status)
}

// Client - HTTP-клиент консоли
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource

	docsOnce sync.Once
	docs     *DocumentResource
}

// Option настраивает клиент при создании
type Option func(*Client)

// WithHTTPClient подменяет транспорт
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New создаёт новый клиент API
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login выполняет вход и возвращает выпущенный токен.
// Сохранение токена - забота вызывающего
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	payload := map[string]string{"email": email, "password": password}

	var resp LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// doJSON отправляет запрос с JSON-телом и разбирает JSON-ответ в out
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, query, body, "application/json", out)
}

// do отправляет запрос, прикладывает токен и проверяет статус ответа.
// Ответ вне 2xx всегда возвращается как *APIError
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	resp, err := c.send(ctx, method, path, query, body, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// send выполняет запрос и отдаёт сырой ответ, тело которого ещё не прочитано.
// Вызывающий обязан закрыть тело
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	token, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(data)),
		}
	}
	return resp, nil
}

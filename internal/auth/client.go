package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ordersvc/order-service/internal/domain"
	"github.com/ordersvc/order-service/internal/ports"
)

// Проверка, что Client удовлетворяет интерфейсу IdentityClient.
var _ ports.IdentityClient = (*Client)(nil)

// Client — HTTP-клиент внешнего сервиса аутентификации.
// Таймаут ограничен конфигурацией: истёкший таймаут и любая транспортная
// ошибка — это ErrAuthServiceUnavailable, ответ 4xx — ErrAuthenticationFailed.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient — конструктор. timeout <= 0 заменяется дефолтом 3s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type validateRequest struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login — обмен логина/пароля на токен.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.Token, error) {
	body, err := c.post(ctx, "/signin", loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	var token domain.Token
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("%w: decode token: %v", domain.ErrAuthServiceUnavailable, err)
	}
	return &token, nil
}

// Validate — проверка токена, возвращает его payload.
func (c *Client) Validate(ctx context.Context, accessToken string) (*domain.TokenPayload, error) {
	body, err := c.post(ctx, "/validate", validateRequest{AccessToken: accessToken, TokenType: "bearer"})
	if err != nil {
		return nil, err
	}

	var payload domain.TokenPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode payload: %v", domain.ErrAuthServiceUnavailable, err)
	}
	return &payload, nil
}

// post — общий POST с маппингом ошибок транспорта и статусов.
func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrAuthServiceUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, fmt.Errorf("%w: status %d", domain.ErrAuthenticationFailed, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: status %d", domain.ErrAuthServiceUnavailable, resp.StatusCode)
	}
}

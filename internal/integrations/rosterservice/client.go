package rosterservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с RosterService (учётные записи тренеров и клиентов)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента RosterService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetCoach получает тренера по ID
func (c *Client) GetCoach(ctx context.Context, coachID int64) (*Coach, error) {
	url := fmt.Sprintf("%s/internal/coaches/%d", c.baseURL, coachID)

	var coach Coach
	if err := c.getJSON(ctx, url, &coach, ErrCoachNotFound); err != nil {
		return nil, err
	}

	return &coach, nil
}

// GetClient получает клиента по ID
func (c *Client) GetClient(ctx context.Context, clientID int64) (*ClientAccount, error) {
	url := fmt.Sprintf("%s/internal/clients/%d", c.baseURL, clientID)

	var account ClientAccount
	if err := c.getJSON(ctx, url, &account, ErrClientNotFound); err != nil {
		return nil, err
	}

	return &account, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
// notFoundErr возвращается на статус 404 (nil - 404 считается ошибкой ответа)
func (c *Client) getJSON(ctx context.Context, url string, dst interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		if notFoundErr != nil {
			return notFoundErr
		}
		return fmt.Errorf("%w: unexpected status code 404", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

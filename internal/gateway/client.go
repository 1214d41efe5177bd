package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/federicojaime/renting-app-sub000/internal/domain"
	"github.com/federicojaime/renting-app-sub000/internal/pkg/logger"
	"github.com/google/uuid"
)

// LoginPath - единственный маршрут бэкенда, на котором 401
// не означает истекшую сессию
const LoginPath = "/user/login"

// TokenSource отдает текущий bearer токен; пустая строка - токена нет
type TokenSource interface {
	Token() string
}

// Client - клиент внешнего REST бэкенда.
// Единственное место, где нормализуются ошибки транспорта и ответа:
// каждый вызов возвращает конверт {ok, msg, data, errores?} ровно
// с одной нормализацией, независимо от вызывающего слоя.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
	logger         logger.Logger
}

// NewClient создает клиент бэкенда.
// Таймауты намеренно не настраиваются: отмена возможна только через ctx.
func NewClient(baseURL string, tokens TokenSource, log logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
		logger:     log,
	}
}

// OnUnauthorized регистрирует обработчик инвалидации сессии.
// Транспортный слой не занимается навигацией: при 401 он лишь
// подает сигнал, а верхний слой решает, куда перенаправить.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// Do выполняет запрос к бэкенду и возвращает нормализованный конверт.
// Контракт ошибок:
//   - транспортная ошибка (ответа нет) -> {ok:false, msg:"no response"}, ErrNoResponse
//   - 401 вне маршрута логина -> сигнал инвалидации сессии, ErrSessionExpired
//   - 404 -> сообщение заменяется на "recurso no encontrado", ErrNotFound
//   - прочие не-2xx -> сообщение бэкенда, иначе текст статуса, ErrBackend
//
// Бизнес-отказ с кодом 2xx (ok:false в конверте) ошибкой не считается:
// его интерпретирует вызывающая форма.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}) (*domain.Envelope, error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Backend unreachable", map[string]interface{}{
			"request_id": requestID,
			"method":     method,
			"path":       path,
			"error":      err.Error(),
		})
		return &domain.Envelope{Ok: false, Msg: "no response"}, domain.ErrNoResponse
	}
	defer resp.Body.Close()

	envelope := c.decodeEnvelope(resp)

	c.logger.Debug("Backend response", map[string]interface{}{
		"request_id": requestID,
		"method":     method,
		"path":       path,
		"status":     resp.StatusCode,
	})

	switch {
	case resp.StatusCode == http.StatusUnauthorized && path != LoginPath:
		envelope.Ok = false
		envelope.Msg = "sesión expirada"
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return envelope, domain.ErrSessionExpired

	case resp.StatusCode == http.StatusNotFound:
		envelope.Ok = false
		envelope.Msg = "recurso no encontrado"
		return envelope, domain.ErrNotFound

	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		envelope.Ok = false
		if envelope.Msg == "" {
			envelope.Msg = http.StatusText(resp.StatusCode)
		}
		return envelope, fmt.Errorf("%w: %s", domain.ErrBackend, envelope.Msg)
	}

	return envelope, nil
}

// decodeEnvelope читает тело ответа в конверт.
// Нечитаемое тело превращается в пустой конверт, статусные ветки Do
// дальше сами подставят сообщение.
func (c *Client) decodeEnvelope(resp *http.Response) *domain.Envelope {
	envelope := &domain.Envelope{}
	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return envelope
	}
	if err := json.Unmarshal(data, envelope); err != nil {
		return &domain.Envelope{}
	}
	return envelope
}

// Get выполняет GET запрос
func (c *Client) Get(ctx context.Context, path string) (*domain.Envelope, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Post выполняет POST запрос с JSON телом
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*domain.Envelope, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

// Patch выполняет PATCH запрос с JSON телом
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*domain.Envelope, error) {
	return c.Do(ctx, http.MethodPatch, path, body)
}

// Delete выполняет DELETE запрос
func (c *Client) Delete(ctx context.Context, path string) (*domain.Envelope, error) {
	return c.Do(ctx, http.MethodDelete, path, nil)
}

// Пакет platform — HTTP-клиент ядра платформы: воркфлоу создания
// сущностей и графовый read-слой. Потребляется только через интерфейсы
// ports.PlatformWorkflows и ports.GraphQuery.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Gunvolt24/marketplace_vendor/internal/domain"
	"github.com/Gunvolt24/marketplace_vendor/internal/ports"
	"github.com/Gunvolt24/marketplace_vendor/pkg/apperr"
)

// Проверки контрактов.
var (
	_ ports.PlatformWorkflows = (*Client)(nil)
	_ ports.GraphQuery        = (*Client)(nil)
)

// Config — параметры подключения к ядру платформы.
type Config struct {
	BaseURL string
	Token   string        // Bearer-токен сервисного доступа
	Timeout time.Duration // таймаут одного запроса
}

// Client — HTTP-клиент ядра платформы.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient - конструктор Client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
	}
}

// CreateStockLocations — вызывает воркфлоу создания локаций.
func (c *Client) CreateStockLocations(
	ctx context.Context,
	inputs []domain.CreateStockLocationInput,
) ([]domain.StockLocation, error) {
	var out struct {
		Result []domain.StockLocation `json:"result"`
	}
	err := c.post(ctx, "/workflows/stock-locations",
		map[string]any{"locations": inputs}, &out)
	if err != nil {
		return nil, err
	}
	return out.Result, nil
}

// CreateLocationFulfillmentSet — вызывает воркфлоу привязки
// fulfillment set к локации.
func (c *Client) CreateLocationFulfillmentSet(
	ctx context.Context,
	input domain.CreateLocationFulfillmentSetInput,
) (domain.FulfillmentSet, error) {
	var out struct {
		Result domain.FulfillmentSet `json:"result"`
	}
	err := c.post(ctx, "/workflows/location-fulfillment-sets", input, &out)
	if err != nil {
		return domain.FulfillmentSet{}, err
	}
	return out.Result, nil
}

// Graph — запрос к графовому read-слою платформы.
func (c *Client) Graph(ctx context.Context, cfg ports.GraphConfig) ([]map[string]any, error) {
	body := map[string]any{
		"entity": cfg.Entity,
		"fields": cfg.Fields,
	}
	if len(cfg.Filters) > 0 {
		body["filters"] = cfg.Filters
	}
	if len(cfg.Variables) > 0 {
		body["variables"] = cfg.Variables
	}
	if cfg.ThrowIfKeyNotFound {
		body["throw_if_key_not_found"] = true
	}

	var out struct {
		Data []map[string]any `json:"data"`
	}
	if err := c.post(ctx, "/graph", body, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// post — общий POST с классификацией ошибок по статусу ответа.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, err, "platform request %s failed", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return classifyStatus(resp.StatusCode, path, resp.Body)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Wrap(apperr.KindInternal, err, "decode platform response %s", path)
	}
	return nil
}

// classifyStatus — HTTP-статус ядра → вид ошибки поверхности.
func classifyStatus(status int, path string, body io.Reader) error {
	var detail struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	_ = json.NewDecoder(body).Decode(&detail)
	message := detail.Message
	if message == "" {
		message = fmt.Sprintf("platform request %s returned status %d", path, status)
	}

	switch status {
	case http.StatusBadRequest:
		return apperr.New(apperr.KindBadRequest, "%s", message)
	case http.StatusUnauthorized:
		return apperr.New(apperr.KindUnauthenticated, "%s", message)
	case http.StatusForbidden:
		return apperr.New(apperr.KindForbidden, "%s", message)
	case http.StatusNotFound:
		return apperr.New(apperr.KindNotFound, "%s", message)
	case http.StatusConflict:
		return apperr.New(apperr.KindConflict, "%s", message)
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return apperr.New(apperr.KindUnavailable, "%s", message)
	default:
		return apperr.New(apperr.KindInternal, "%s", message)
	}
}

package nsgifts

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"applecard-bot/internal/pkg/config"
	"applecard-bot/internal/pkg/errs"
	"applecard-bot/internal/usecase"
)

// Client talks to the NS Gifts API using the bearer token owned by
// TokenCache. Every operation is a single request/response exchange; no
// call is retried here.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     *TokenCache
}

var _ usecase.VendorGateway = (*Client)(nil)

func NewClient(cfg config.VendorConfig, tokens *TokenCache) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		tokens:     tokens,
	}
}

type orderResponse struct {
	Status string   `json:"status"`
	Pins   []string `json:"pins"`
}

func (c *Client) CreateOrder(ctx context.Context, serviceID int, quantity float64, customID uuid.UUID, data string) error {
	status, body, err := c.post(ctx, "/api/v1/create_order", map[string]any{
		"service_id": serviceID,
		"quantity":   quantity,
		"custom_id":  customID.String(),
		"data":       data,
	})
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return errs.Mark(errs.Newf("create_order status %d: %s", status, body), errs.ErrVendorAPI)
	}
	return nil
}

func (c *Client) PayOrder(ctx context.Context, customID uuid.UUID) (*usecase.OrderResult, error) {
	status, body, err := c.post(ctx, "/api/v1/pay_order", map[string]any{
		"custom_id": customID.String(),
	})
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, errs.Mark(errs.Newf("pay_order status %d: %s", status, body), errs.ErrVendorAPI)
	}
	return decodeOrderResult(body)
}

func (c *Client) OrderInfo(ctx context.Context, customID uuid.UUID) (*usecase.OrderResult, error) {
	status, body, err := c.post(ctx, "/api/v1/order_info", map[string]any{
		"custom_id": customID.String(),
	})
	if err != nil {
		return nil, err
	}
	switch status {
	case http.StatusOK:
		return decodeOrderResult(body)
	case http.StatusUnprocessableEntity:
		return nil, errs.Mark(errs.Newf("order_info rejected custom_id: %s", body), errs.ErrValidation)
	default:
		return nil, errs.Mark(errs.Newf("order_info status %d: %s", status, body), errs.ErrVendorAPI)
	}
}

// Balance is advisory: a response that arrived but cannot be trusted
// degrades to zero, which the deactivation path treats as "below any
// threshold". Only transport or token failures surface as errors.
func (c *Client) Balance(ctx context.Context) (decimal.Decimal, error) {
	status, body, err := c.post(ctx, "/api/v1/check_balance", nil)
	if err != nil {
		return decimal.Zero, err
	}
	if status != http.StatusOK {
		return decimal.Zero, nil
	}

	var bare decimal.Decimal
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}
	var wrapped struct {
		Balance decimal.Decimal `json:"balance"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		return wrapped.Balance, nil
	}
	return decimal.Zero, nil
}

// post performs one authenticated exchange and hands back status and body.
// A nil payload sends no body (check_balance takes none).
func (c *Client) post(ctx context.Context, path string, payload map[string]any) (int, []byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return 0, nil, err
	}

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, errs.Wrapf(err, "failed to encode %s request", path)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, errs.Wrapf(err, "failed to build %s request", path)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, errs.Mark(errs.Wrapf(err, "%s request failed", path), errs.ErrNetwork)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errs.Mark(errs.Wrapf(err, "failed to read %s response", path), errs.ErrNetwork)
	}
	return resp.StatusCode, body, nil
}

func decodeOrderResult(body []byte) (*usecase.OrderResult, error) {
	var data orderResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid order response JSON"), errs.ErrProtocol)
	}
	return &usecase.OrderResult{Status: data.Status, Pins: data.Pins}, nil
}

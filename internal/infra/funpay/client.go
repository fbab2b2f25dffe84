package funpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"applecard-bot/internal/pkg/config"
	"applecard-bot/internal/pkg/errs"
	"applecard-bot/internal/usecase"
)

// Client is the marketplace collaborator adapter. It implements the chat,
// refund and listing capabilities the core requires, authenticated with the
// account's golden key.
type Client struct {
	httpClient *http.Client
	baseURL    string
	authToken  string
}

var (
	_ usecase.Messenger = (*Client)(nil)
	_ usecase.Refunder  = (*Client)(nil)
	_ usecase.LotStore  = (*Client)(nil)
)

func NewClient(cfg config.FunpayConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		authToken:  cfg.AuthToken,
	}
}

// Account identifies the authorized seller.
type Account struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type orderPayload struct {
	ID               string `json:"id"`
	ChatID           int64  `json:"chat_id"`
	BuyerID          int64  `json:"buyer_id"`
	Title            string `json:"title"`
	FullDescription  string `json:"full_description"`
	ShortDescription string `json:"short_description"`
	SubcategoryID    int64  `json:"subcategory_id"`
}

// Event is one entry of the marketplace event stream.
type Event struct {
	Type     string `json:"type"`
	OrderID  string `json:"order_id,omitempty"`
	ChatID   int64  `json:"chat_id,omitempty"`
	AuthorID int64  `json:"author_id,omitempty"`
	Text     string `json:"text,omitempty"`
}

const (
	EventNewOrder   = "new_order"
	EventNewMessage = "new_message"
)

// EventBatch carries events plus the tag to resume the stream from.
type EventBatch struct {
	Tag    string  `json:"tag"`
	Events []Event `json:"events"`
}

// Me fetches the authorized account, used as a startup credential check.
func (c *Client) Me(ctx context.Context) (*Account, error) {
	var account Account
	if err := c.getJSON(ctx, "/api/user", &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Events polls the event stream. An empty tag starts from "now".
func (c *Client) Events(ctx context.Context, tag string) (*EventBatch, error) {
	path := "/api/events"
	if tag != "" {
		path += "?tag=" + tag
	}
	var batch EventBatch
	if err := c.getJSON(ctx, path, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

// GetOrder fetches a full order by id. The parser prefers the full
// description and falls back to the short one.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*usecase.Order, error) {
	var payload orderPayload
	if err := c.getJSON(ctx, "/api/orders/"+orderID, &payload); err != nil {
		return nil, err
	}
	description := payload.FullDescription
	if description == "" {
		description = payload.ShortDescription
	}
	return &usecase.Order{
		ID:            payload.ID,
		ChatID:        payload.ChatID,
		BuyerID:       payload.BuyerID,
		Title:         payload.Title,
		Description:   description,
		SubcategoryID: payload.SubcategoryID,
	}, nil
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	return c.postJSON(ctx, "/api/chat", map[string]any{
		"chat_id": chatID,
		"text":    text,
	})
}

func (c *Client) Refund(ctx context.Context, orderID string) error {
	return c.postJSON(ctx, "/api/orders/"+orderID+"/refund", nil)
}

func (c *Client) LotsInCategory(ctx context.Context, categoryID int64) ([]usecase.Lot, error) {
	var lots []usecase.Lot
	path := fmt.Sprintf("/api/lots?subcategory=%d", categoryID)
	if err := c.getJSON(ctx, path, &lots); err != nil {
		return nil, err
	}
	return lots, nil
}

func (c *Client) LotFields(ctx context.Context, lotID int64) (*usecase.Lot, error) {
	var lot usecase.Lot
	if err := c.getJSON(ctx, fmt.Sprintf("/api/lots/%d", lotID), &lot); err != nil {
		return nil, err
	}
	return &lot, nil
}

func (c *Client) SaveLot(ctx context.Context, lot *usecase.Lot) error {
	return c.postJSON(ctx, fmt.Sprintf("/api/lots/%d", lot.ID), map[string]any{
		"active": lot.Active,
	})
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errs.Wrapf(err, "failed to build %s request", path)
	}
	body, err := c.do(req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errs.Mark(errs.Wrapf(err, "invalid %s response JSON", path), errs.ErrProtocol)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload map[string]any) error {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return errs.Wrapf(err, "failed to encode %s request", path)
		}
		reqBody = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reqBody)
	if err != nil {
		return errs.Wrapf(err, "failed to build %s request", path)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	_, err = c.do(req)
	return err
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.AddCookie(&http.Cookie{Name: "golden_key", Value: c.authToken})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "%s request failed", req.URL.Path), errs.ErrNetwork)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "failed to read %s response", req.URL.Path), errs.ErrNetwork)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errs.Newf("%s status %d: %s", req.URL.Path, resp.StatusCode, body)
	}
	return body, nil
}

package nsgifts

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"applecard-bot/internal/pkg/clock"
	"applecard-bot/internal/pkg/config"
	"applecard-bot/internal/pkg/errs"
)

// Tokens issued without a usable valid_thru are assumed to live this long.
const defaultTokenTTL = 2 * time.Hour

// TokenCache owns the vendor bearer token. A cached token is handed out
// only while the clock is before its expiry; otherwise a credential
// exchange replaces it. The stale entry survives a failed fetch but is
// never handed out, since freshness is re-checked on every call.
type TokenCache struct {
	httpClient *http.Client
	baseURL    string
	login      string
	password   string
	clock      clock.Clock

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewTokenCache(cfg config.VendorConfig, clk clock.Clock) *TokenCache {
	return &TokenCache{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		login:      cfg.Login,
		password:   cfg.Password,
		clock:      clk,
	}
}

// Token returns the cached token or performs the credential exchange.
// Serialized so concurrent fulfillments never race on refresh.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.clock.Now().Before(c.expiresAt) {
		return c.token, nil
	}

	token, expiresAt, err := c.exchange(ctx)
	if err != nil {
		return "", err
	}
	c.token = token
	c.expiresAt = expiresAt
	return c.token, nil
}

func (c *TokenCache) exchange(ctx context.Context) (string, time.Time, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    c.login,
		"password": c.password,
	})
	if err != nil {
		return "", time.Time{}, errs.Wrap(err, "failed to encode token request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/get_token", bytes.NewReader(payload))
	if err != nil {
		return "", time.Time{}, errs.Wrap(err, "failed to build token request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", time.Time{}, errs.Mark(errs.Wrap(err, "token request failed"), errs.ErrNetwork)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", time.Time{}, errs.Mark(errs.Wrap(err, "failed to read token response"), errs.ErrNetwork)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// handled below
	case http.StatusUnauthorized:
		return "", time.Time{}, errs.Mark(errs.New("invalid vendor email or password"), errs.ErrVendorAuth)
	case http.StatusUnprocessableEntity:
		return "", time.Time{}, errs.Mark(errs.Newf("token request rejected: %s", body), errs.ErrValidation)
	default:
		return "", time.Time{}, errs.Mark(errs.Newf("unexpected token response status %d: %s", resp.StatusCode, body), errs.ErrVendorAPI)
	}

	var data struct {
		AccessToken string      `json:"access_token"`
		ValidThru   json.Number `json:"valid_thru"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return "", time.Time{}, errs.Mark(errs.Wrap(err, "invalid token response JSON"), errs.ErrProtocol)
	}
	if data.AccessToken == "" {
		return "", time.Time{}, errs.Mark(errs.New("no access_token in token response"), errs.ErrProtocol)
	}

	expiresAt := c.clock.Now().Add(defaultTokenTTL)
	if ts, err := data.ValidThru.Float64(); err == nil && ts > 0 {
		expiresAt = time.Unix(int64(ts), 0)
	}
	return data.AccessToken, expiresAt, nil
}

package nsgifts

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"slices"
	"time"

	"applecard-bot/internal/pkg/errs"
)

const ipifyURL = "https://api.ipify.org?format=json"

// ExternalIP resolves this machine's public address so the vendor's IP
// whitelist can be kept current at startup.
func ExternalIP(ctx context.Context) (string, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ipifyURL, nil)
	if err != nil {
		return "", errs.Wrap(err, "failed to build external IP request")
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "external IP lookup failed"), errs.ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.Mark(errs.Newf("external IP lookup status %d", resp.StatusCode), errs.ErrVendorAPI)
	}
	var data struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", errs.Mark(errs.Wrap(err, "invalid external IP response"), errs.ErrProtocol)
	}
	if data.IP == "" {
		return "", errs.Mark(errs.New("empty external IP response"), errs.ErrProtocol)
	}
	return data.IP, nil
}

// EnsureWhitelisted adds ip to the vendor's whitelist unless it is already
// listed. A failed listing falls through to the add call.
func (c *Client) EnsureWhitelisted(ctx context.Context, ip string) error {
	listed, err := c.whitelistedIPs(ctx)
	if err == nil && slices.Contains(listed, ip) {
		return nil
	}
	return c.addToWhitelist(ctx, ip)
}

func (c *Client) whitelistedIPs(ctx context.Context) ([]string, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/ip-whitelist/list", nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build whitelist request")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "whitelist request failed"), errs.ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.Mark(errs.Newf("whitelist status %d", resp.StatusCode), errs.ErrVendorAPI)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to read whitelist response"), errs.ErrNetwork)
	}

	// The endpoint answers either a bare list or {"data": [...]}.
	var bare []string
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}
	var wrapped struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid whitelist response JSON"), errs.ErrProtocol)
	}
	return wrapped.Data, nil
}

func (c *Client) addToWhitelist(ctx context.Context, ip string) error {
	status, body, err := c.post(ctx, "/api/v1/ip-whitelist/add", map[string]any{"ip": ip})
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return errs.Mark(errs.Newf("ip-whitelist/add status %d: %s", status, body), errs.ErrVendorAPI)
	}
	return nil
}

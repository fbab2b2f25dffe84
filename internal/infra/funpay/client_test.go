//go:build unit

package funpay_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"applecard-bot/internal/infra/funpay"
	"applecard-bot/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marketplaceStub(t *testing.T, handler http.HandlerFunc) *funpay.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("golden_key")
		require.NoError(t, err)
		require.Equal(t, "test-golden-key", cookie.Value)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return funpay.NewClient(config.FunpayConfig{
		AuthToken: "test-golden-key",
		BaseURL:   srv.URL,
		Timeout:   time.Second,
	})
}

func TestClientGetOrder(t *testing.T) {
	t.Run("maps the order payload", func(t *testing.T) {
		client := marketplaceStub(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/orders/ABCDEF12", r.URL.Path)
			fmt.Fprint(w, `{
				"id": "ABCDEF12",
				"chat_id": 77001,
				"buyer_id": 42,
				"title": "Apple Gift Card (US)",
				"full_description": "apple_card: 25 usd",
				"subcategory_id": 1316
			}`)
		})

		order, err := client.GetOrder(context.Background(), "ABCDEF12")
		require.NoError(t, err)
		assert.Equal(t, "ABCDEF12", order.ID)
		assert.Equal(t, int64(77001), order.ChatID)
		assert.Equal(t, "apple_card: 25 usd", order.Description)
		assert.Equal(t, int64(1316), order.SubcategoryID)
	})

	t.Run("falls back to the short description", func(t *testing.T) {
		client := marketplaceStub(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"id":"X","short_description":"apple_card: 50 try"}`)
		})

		order, err := client.GetOrder(context.Background(), "X")
		require.NoError(t, err)
		assert.Equal(t, "apple_card: 50 try", order.Description)
	})
}

func TestClientSendMessageAndRefund(t *testing.T) {
	var chatBody map[string]any
	refunded := false
	client := marketplaceStub(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/chat":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&chatBody))
		case "/api/orders/ABCDEF12/refund":
			require.Equal(t, http.MethodPost, r.Method)
			refunded = true
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	require.NoError(t, client.SendMessage(context.Background(), 77001, "hello"))
	assert.Equal(t, float64(77001), chatBody["chat_id"])
	assert.Equal(t, "hello", chatBody["text"])

	require.NoError(t, client.Refund(context.Background(), "ABCDEF12"))
	assert.True(t, refunded)
}

func TestClientLots(t *testing.T) {
	client := marketplaceStub(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/lots" && r.URL.Query().Get("subcategory") == "1316":
			fmt.Fprint(w, `[{"id":10,"active":true},{"id":11,"active":true}]`)
		case r.URL.Path == "/api/lots/10" && r.Method == http.MethodGet:
			fmt.Fprint(w, `{"id":10,"active":true}`)
		case r.URL.Path == "/api/lots/10" && r.Method == http.MethodPost:
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, false, body["active"])
		default:
			t.Fatalf("unexpected %s %s", r.Method, r.URL)
		}
	})

	lots, err := client.LotsInCategory(context.Background(), 1316)
	require.NoError(t, err)
	require.Len(t, lots, 2)

	lot, err := client.LotFields(context.Background(), 10)
	require.NoError(t, err)
	assert.True(t, lot.Active)

	lot.Active = false
	require.NoError(t, client.SaveLot(context.Background(), lot))
}

func TestClientErrorsOnNonOK(t *testing.T) {
	client := marketplaceStub(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	})

	err := client.SendMessage(context.Background(), 1, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")

	_, err = client.LotsInCategory(context.Background(), 1316)
	require.Error(t, err)
}

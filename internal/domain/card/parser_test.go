//go:build unit

package card_test

import (
	"testing"

	"applecard-bot/internal/domain/card"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("well-formed descriptions", func(t *testing.T) {
		cases := []struct {
			name string
			text string
			want card.Request
		}{
			{
				name: "plain colon form",
				text: "apple_card: 25 USD, please",
				want: card.Request{Nominal: 25, Currency: card.USD},
			},
			{
				name: "equals form without spaces",
				text: "apple_card=50try",
				want: card.Request{Nominal: 50, Currency: card.TRY},
			},
			{
				name: "mixed case anywhere in text",
				text: "Gift card for you! APPLE_CARD: 1000 Rub — instant delivery",
				want: card.Request{Nominal: 1000, Currency: card.RUB},
			},
			{
				name: "leading zeros taken numerically",
				text: "apple_card: 0025 usd",
				want: card.Request{Nominal: 25, Currency: card.USD},
			},
			{
				name: "first match wins",
				text: "apple_card: 10 usd apple_card: 20 usd",
				want: card.Request{Nominal: 10, Currency: card.USD},
			},
			{
				name: "six digit nominal",
				text: "apple_card: 123456 try",
				want: card.Request{Nominal: 123456, Currency: card.TRY},
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, ok := card.Parse(tc.text)
				require.True(t, ok)
				if diff := cmp.Diff(tc.want, got); diff != "" {
					t.Errorf("parsed request mismatch (-want +got):\n%s", diff)
				}
			})
		}
	})

	t.Run("no match yields ok=false", func(t *testing.T) {
		cases := []struct {
			name string
			text string
		}{
			{name: "empty description", text: ""},
			{name: "unrelated text", text: "steam wallet code 20 usd"},
			{name: "missing separator", text: "apple_card 25 usd"},
			{name: "unsupported currency token", text: "apple_card: 25 eur"},
			{name: "no digits", text: "apple_card: usd"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, ok := card.Parse(tc.text)
				assert.False(t, ok)
				assert.Equal(t, card.Request{}, got)
			})
		}
	})
}

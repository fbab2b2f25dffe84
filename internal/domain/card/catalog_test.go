//go:build unit

package card_test

import (
	"testing"

	"applecard-bot/internal/domain/card"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("known nominals map to vendor service ids", func(t *testing.T) {
		cases := []struct {
			name string
			req  card.Request
			want int
		}{
			{name: "USD 10", req: card.Request{Nominal: 10, Currency: card.USD}, want: 28},
			{name: "USD 2 lower bound", req: card.Request{Nominal: 2, Currency: card.USD}, want: 20},
			{name: "USD 100 upper bound", req: card.Request{Nominal: 100, Currency: card.USD}, want: 32},
			{name: "TRY 10", req: card.Request{Nominal: 10, Currency: card.TRY}, want: 33},
			{name: "TRY 1500 upper bound", req: card.Request{Nominal: 1500, Currency: card.TRY}, want: 460},
			{name: "RUB 500 lower bound", req: card.Request{Nominal: 500, Currency: card.RUB}, want: 40},
			{name: "RUB 5000 upper bound", req: card.Request{Nominal: 5000, Currency: card.RUB}, want: 382},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := card.Resolve(tc.req)
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			})
		}
	})

	t.Run("absent nominal is a hard miss", func(t *testing.T) {
		_, err := card.Resolve(card.Request{Nominal: 11, Currency: card.USD})
		require.ErrorIs(t, err, card.ErrUnsupportedNominal)

		// nominal exists in another currency's table only
		_, err = card.Resolve(card.Request{Nominal: 5000, Currency: card.USD})
		require.ErrorIs(t, err, card.ErrUnsupportedNominal)
	})

	t.Run("unknown currency", func(t *testing.T) {
		_, err := card.Resolve(card.Request{Nominal: 25, Currency: card.Currency("EUR")})
		require.ErrorIs(t, err, card.ErrUnsupportedCurrency)
	})
}

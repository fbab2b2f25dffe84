//go:build unit

package builder

import (
	"applecard-bot/internal/usecase"
)

type OrderBuilder struct {
	ID            string
	ChatID        int64
	BuyerID       int64
	Title         string
	Description   string
	SubcategoryID int64
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:            "ABCDEF12",
		ChatID:        77001,
		BuyerID:       42,
		Title:         "Apple Gift Card (US)",
		Description:   "Instant delivery! apple_card: 25 USD, confirmation inside",
		SubcategoryID: 1316,
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) Build() usecase.Order {
	return usecase.Order{
		ID:            o.ID,
		ChatID:        o.ChatID,
		BuyerID:       o.BuyerID,
		Title:         o.Title,
		Description:   o.Description,
		SubcategoryID: o.SubcategoryID,
	}
}

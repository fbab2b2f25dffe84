package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a marketplace order as delivered by the event source.
type Order struct {
	ID            string
	ChatID        int64
	BuyerID       int64
	Title         string
	Description   string
	SubcategoryID int64
}

// OrderResult is the vendor's view of one purchase attempt. Pins may be
// empty on a successful exchange: the vendor fulfils some orders
// asynchronously and an empty list means "still processing", not an error.
type OrderResult struct {
	Status string
	Pins   []string
}

// Lot is a sellable listing. The core reads its id and writes its active
// flag; everything else stays with the marketplace collaborator.
type Lot struct {
	ID     int64
	Active bool
}

// VendorGateway is the gift-card vendor lifecycle: create, pay, fetch,
// plus the advisory balance read used by the recovery chain.
type VendorGateway interface {
	CreateOrder(ctx context.Context, serviceID int, quantity float64, customID uuid.UUID, data string) error
	PayOrder(ctx context.Context, customID uuid.UUID) (*OrderResult, error)
	OrderInfo(ctx context.Context, customID uuid.UUID) (*OrderResult, error)
	Balance(ctx context.Context) (decimal.Decimal, error)
}

// Messenger delivers a chat message to the buyer.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Refunder reverses a marketplace transaction.
type Refunder interface {
	Refund(ctx context.Context, orderID string) error
}

// LotStore is the listing capability the marketplace collaborator must
// implement: enumerate a category, fetch a listing's mutable fields,
// persist an updated listing.
type LotStore interface {
	LotsInCategory(ctx context.Context, categoryID int64) ([]Lot, error)
	LotFields(ctx context.Context, lotID int64) (*Lot, error)
	SaveLot(ctx context.Context, lot *Lot) error
}

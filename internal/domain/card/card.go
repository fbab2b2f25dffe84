package card

import (
	"applecard-bot/internal/pkg/errs"
)

var (
	ErrUnsupportedCurrency = errs.New("unsupported currency")
	ErrUnsupportedNominal  = errs.New("unsupported nominal")
)

// Currency is one of the three store regions the vendor sells cards for.
type Currency string

const (
	TRY Currency = "TRY"
	USD Currency = "USD"
	RUB Currency = "RUB"
)

func (c Currency) String() string { return string(c) }

// Request is the parsed buyer intent: which face value in which currency.
type Request struct {
	Nominal  int
	Currency Currency
}

package card

import (
	"regexp"
	"strconv"
	"strings"
)

// Sellers encode the card in the lot description as
// "apple_card: <nominal> <TRY|USD|RUB>" (or "=" instead of ":").
// The pattern may sit anywhere inside surrounding marketing text.
var descriptionPattern = regexp.MustCompile(`apple_card[:=]\s*(\d{1,6})\s*(try|usd|rub)`)

// Parse extracts the requested nominal and currency from an order
// description. A description without the pattern is a normal outcome,
// reported as ok=false rather than an error.
func Parse(description string) (Request, bool) {
	m := descriptionPattern.FindStringSubmatch(strings.ToLower(description))
	if m == nil {
		return Request{}, false
	}
	nominal, err := strconv.Atoi(m[1])
	if err != nil {
		// unreachable: the pattern admits at most 6 digits
		return Request{}, false
	}
	return Request{
		Nominal:  nominal,
		Currency: Currency(strings.ToUpper(m[2])),
	}, true
}

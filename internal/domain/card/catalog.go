package card

import (
	"applecard-bot/internal/pkg/errs"
)

// Vendor service ids per currency and face value. These tables mirror the
// vendor's catalog exactly; a nominal absent here must never be
// approximated to a neighbouring one.
var serviceIDsTRY = map[int]int{
	10:   33,
	15:   450,
	25:   34,
	30:   451,
	40:   377,
	50:   35,
	75:   452,
	100:  36,
	150:  453,
	200:  454,
	250:  37,
	300:  455,
	400:  456,
	500:  38,
	600:  457,
	700:  458,
	1000: 39,
	1250: 459,
	1500: 460,
}

var serviceIDsUSD = map[int]int{
	2:   20,
	3:   21,
	4:   22,
	5:   23,
	6:   24,
	7:   25,
	8:   26,
	9:   27,
	10:  28,
	20:  29,
	25:  30,
	50:  31,
	100: 32,
}

var serviceIDsRUB = map[int]int{
	500:  40,
	600:  378,
	700:  379,
	1000: 41,
	1500: 42,
	2000: 380,
	2500: 381,
	5000: 382,
}

// Resolve maps a parsed request to the vendor service id. Misses are hard
// errors surfaced to the buyer; there is no fuzzy matching.
func Resolve(req Request) (int, error) {
	var table map[int]int
	switch req.Currency {
	case TRY:
		table = serviceIDsTRY
	case USD:
		table = serviceIDsUSD
	case RUB:
		table = serviceIDsRUB
	default:
		return 0, errs.Mark(errs.Newf("currency %q", req.Currency), ErrUnsupportedCurrency)
	}
	serviceID, ok := table[req.Nominal]
	if !ok {
		return 0, errs.Mark(errs.Newf("nominal %d %s", req.Nominal, req.Currency), ErrUnsupportedNominal)
	}
	return serviceID, nil
}

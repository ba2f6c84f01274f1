package currency

import (
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-transaction-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transaction-ledger/internal/models"
)

// Static exchange rates into the reporting currency (PLN).
var (
	rateEUR = decimal.NewFromFloat(4.3)
	rateUSD = decimal.NewFromFloat(4.0)
)

// ToPLN converts an amount tagged with a currency code into PLN.
// An unknown code passes the amount through unconverted: by the time this
// runs the currency has already been validated, so the branch should be
// unreachable, but it is kept as a logged safeguard rather than a panic.
func ToPLN(amount float64, code string) decimal.Decimal {
	value := decimal.NewFromFloat(amount)

	switch code {
	case models.PLN:
		return value
	case models.EUR:
		return value.Mul(rateEUR)
	case models.USD:
		return value.Mul(rateUSD)
	default:
		logger.Log.Warnw("unknown currency, passing amount through unconverted",
			"currency", code, "amount", amount)
		return value
	}
}

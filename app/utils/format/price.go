package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var rub = accounting.Accounting{Symbol: "₽", Precision: 2, Thousand: " ", Decimal: ",", Format: "%v %s"}

// Price renders a decimal amount for display, e.g. "12 490,00 ₽".
func Price(amount decimal.Decimal) string {
	return rub.FormatMoneyDecimal(amount)
}

package premiumo

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// All amounts in the tracker are premiums and costs in the account currency.
const accountCurrency = money.USD

// FormatAmount renders a monetary amount according to the display
// preferences: currency symbol, ISO code, or plain number, with the
// configured number of decimals.
func FormatAmount(value decimal.Decimal, prefs Preferences) string {
	cur := money.GetCurrency(accountCurrency)

	grapheme, template := cur.Grapheme, "$1"
	switch prefs.CurrencyStyle {
	case CurrencyCode:
		grapheme, template = cur.Code, "$ 1"
	case CurrencyPlain:
		grapheme, template = "", "1"
	}

	decimals := prefs.CurrencyDecimals
	formatter := money.NewFormatter(decimals, ".", ",", grapheme, template)

	// The formatter takes minor units at the configured fraction.
	minor := value.Shift(int32(decimals)).Round(0).IntPart()
	return formatter.Format(minor)
}

// dateLayouts maps the stored date display tokens to Go time layouts.
var dateLayouts = map[string]string{
	DateStyleDefault: "Jan 02, 2006",
	DateStyleISO:     "2006-01-02",
	DateStyleEU:      "02/01/2006",
	DateStyleUS:      "01/02/2006",
}

// FormatDate renders a date according to the display preferences. Unknown
// patterns fall back to the default style.
func FormatDate(d Date, prefs Preferences) string {
	layout, ok := dateLayouts[prefs.DateFormat]
	if !ok {
		layout = dateLayouts[DateStyleDefault]
	}
	return d.Format(layout)
}

package premiumo

import "github.com/shopspring/decimal"

// dec is a shorthand for decimal literals in tests.
func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

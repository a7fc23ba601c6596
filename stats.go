package premiumo

import (
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// TradeStats is the derived aggregate view of a trade collection. All sums
// are premium × quantity unless noted. Nothing here is persisted: stats are
// recomputed from the trade log on every read.
type TradeStats struct {
	TotalPremium     decimal.Decimal
	TotalBuybackCost decimal.Decimal
	NetPremium       decimal.Decimal
	OpenTrades       int
	ClosedTrades     int
	MonthlyPremium   decimal.Decimal
	AveragePremium   decimal.Decimal
	YTDPremium       decimal.Decimal
	WeeklyPremium    decimal.Decimal
	CallsPremium     decimal.Decimal
	PutsPremium      decimal.Decimal
	WinRate          Percent
	AvgPerContract   decimal.Decimal
	TotalContracts   int
}

// CalculateStats derives aggregates from the trades as of the given date.
// It is a pure function of (trades, on): callers pass Today() for the live
// view and must not assume a value stays valid across a day boundary.
//
// Time windows (week, month, year to date) bucket trades by the date they
// were opened, inclusive on both ends; a closed trade stays counted in the
// period it was opened. The week starts on Monday.
//
// A trade counts as a win when it resolved as closed or expired, so the
// full premium was kept. An assignment always counts as a loss, whether or
// not it was actually profitable. That asymmetry is deliberate product
// semantics, keep it.
func CalculateStats(trades []Trade, on Date) TradeStats {
	stats := TradeStats{}

	weekStart := on.StartOf(Weekly)
	monthStart := on.StartOf(Monthly)
	yearStart := on.StartOf(Yearly)

	openedWithin := func(t Trade, start Date) bool {
		return !t.DateOpened.Before(start) && !t.DateOpened.After(on)
	}

	var resolved, kept int
	for _, t := range trades {
		total := t.TotalPremium()

		stats.TotalPremium = stats.TotalPremium.Add(total)
		stats.TotalBuybackCost = stats.TotalBuybackCost.Add(t.Buyback())
		stats.TotalContracts += t.Quantity

		if t.Status == StatusOpen {
			stats.OpenTrades++
		}
		if t.Status.Resolved() {
			stats.ClosedTrades++
			resolved++
			if t.Status == StatusClosed || t.Status == StatusExpired {
				kept++
			}
		}

		if openedWithin(t, weekStart) {
			stats.WeeklyPremium = stats.WeeklyPremium.Add(total)
		}
		if openedWithin(t, monthStart) {
			stats.MonthlyPremium = stats.MonthlyPremium.Add(total)
		}
		if openedWithin(t, yearStart) {
			stats.YTDPremium = stats.YTDPremium.Add(total)
		}

		switch t.Type {
		case CoveredCall:
			stats.CallsPremium = stats.CallsPremium.Add(total)
		case CashSecuredPut:
			stats.PutsPremium = stats.PutsPremium.Add(total)
		}
	}

	stats.NetPremium = stats.TotalPremium.Sub(stats.TotalBuybackCost)

	if resolved > 0 {
		stats.WinRate = Percent(float64(kept) / float64(resolved) * 100)
	}
	if len(trades) > 0 {
		stats.AveragePremium = stats.TotalPremium.Div(decimal.NewFromInt(int64(len(trades))))
	}
	if stats.TotalContracts > 0 {
		stats.AvgPerContract = stats.TotalPremium.Div(decimal.NewFromInt(int64(stats.TotalContracts)))
	}
	return stats
}

// MonthlyPremium is the summed premium for one calendar month.
type MonthlyPremium struct {
	Month   string // zero-padded YYYY-MM key
	Premium decimal.Decimal
}

// PremiumByMonth groups premium by the year-month a trade was opened and
// returns at most the 12 most recent months, newest first. The zero-padded
// key sorts lexicographically in chronological order.
func PremiumByMonth(trades []Trade) []MonthlyPremium {
	byMonth := make(map[string]decimal.Decimal)
	for _, t := range trades {
		key := t.DateOpened.Format("2006-01")
		byMonth[key] = byMonth[key].Add(t.TotalPremium())
	}

	months := make([]MonthlyPremium, 0, len(byMonth))
	for month, premium := range byMonth {
		months = append(months, MonthlyPremium{Month: month, Premium: premium})
	}
	slices.SortFunc(months, func(a, b MonthlyPremium) int {
		return strings.Compare(b.Month, a.Month)
	})

	if len(months) > 12 {
		months = months[:12]
	}
	return months
}

// SymbolPremium is the summed premium for one underlying.
type SymbolPremium struct {
	Symbol  string
	Premium decimal.Decimal
}

// PremiumBySymbol groups premium by symbol and returns at most the top 10,
// highest first. Ties keep the order in which the symbols first appeared.
func PremiumBySymbol(trades []Trade) []SymbolPremium {
	index := make(map[string]int)
	var symbols []SymbolPremium
	for _, t := range trades {
		i, ok := index[t.Symbol]
		if !ok {
			i = len(symbols)
			index[t.Symbol] = i
			symbols = append(symbols, SymbolPremium{Symbol: t.Symbol})
		}
		symbols[i].Premium = symbols[i].Premium.Add(t.TotalPremium())
	}

	sort.SliceStable(symbols, func(i, j int) bool {
		return symbols[i].Premium.GreaterThan(symbols[j].Premium)
	})

	if len(symbols) > 10 {
		symbols = symbols[:10]
	}
	return symbols
}

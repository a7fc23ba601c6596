package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/premiumo/premiumo"
)

// SummaryMarkdown renders the aggregate stats as a markdown document.
// Monetary values honor the display preferences.
func SummaryMarkdown(stats premiumo.TradeStats, on premiumo.Date, prefs premiumo.Preferences) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Premium Summary on %s", on))
	doc.PlainText(fmt.Sprintf("Net premium: %s (received %s, paid back %s)",
		premiumo.FormatAmount(stats.NetPremium, prefs),
		premiumo.FormatAmount(stats.TotalPremium, prefs),
		premiumo.FormatAmount(stats.TotalBuybackCost, prefs)))

	rows := [][]string{
		{"Open trades", fmt.Sprintf("%d", stats.OpenTrades)},
		{"Closed trades", fmt.Sprintf("%d", stats.ClosedTrades)},
		{"Win rate", stats.WinRate.String()},
		{"This week", premiumo.FormatAmount(stats.WeeklyPremium, prefs)},
		{"This month", premiumo.FormatAmount(stats.MonthlyPremium, prefs)},
		{"Year to date", premiumo.FormatAmount(stats.YTDPremium, prefs)},
	}
	if !prefs.MetricsCompact {
		rows = append(rows,
			[]string{"Covered calls", premiumo.FormatAmount(stats.CallsPremium, prefs)},
			[]string{"Cash secured puts", premiumo.FormatAmount(stats.PutsPremium, prefs)},
			[]string{"Average premium", premiumo.FormatAmount(stats.AveragePremium, prefs)},
			[]string{"Per contract", premiumo.FormatAmount(stats.AvgPerContract, prefs)},
			[]string{"Contracts", fmt.Sprintf("%d", stats.TotalContracts)},
		)
	}

	doc.H2("Metrics")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows:   rows,
	})

	return doc.String()
}

// MonthsMarkdown renders the per-month premium breakdown, newest first.
func MonthsMarkdown(months []premiumo.MonthlyPremium, prefs premiumo.Preferences) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Premium by Month")
	rows := make([][]string, 0, len(months))
	for _, m := range months {
		rows = append(rows, []string{m.Month, premiumo.FormatAmount(m.Premium, prefs)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Month", "Premium"},
		Rows:   rows,
	})

	return doc.String()
}

// SymbolsMarkdown renders the top symbols by collected premium.
func SymbolsMarkdown(symbols []premiumo.SymbolPremium, prefs premiumo.Preferences) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Premium by Symbol")
	rows := make([][]string, 0, len(symbols))
	for _, s := range symbols {
		rows = append(rows, []string{s.Symbol, premiumo.FormatAmount(s.Premium, prefs)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Symbol", "Premium"},
		Rows:   rows,
	})

	return doc.String()
}

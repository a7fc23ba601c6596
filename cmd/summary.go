package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/premiumo/premiumo"
	"github.com/premiumo/premiumo/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date      string
	breakdown bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display premium income statistics" }
func (*summaryCmd) Usage() string {
	return `pplus summary [-d <date>] [-breakdown]

  Displays aggregate premium statistics as of a date: totals, net premium,
  week/month/year-to-date windows and win rate. With -breakdown, also the
  per-month and per-symbol tables.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", premiumo.Today().String(), "Date for the summary.")
	f.BoolVar(&c.breakdown, "breakdown", false, "Include per-month and per-symbol breakdowns.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := premiumo.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	repo, err := openRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		return subcommands.ExitFailure
	}
	prefStore, err := openPreferences()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		return subcommands.ExitFailure
	}
	prefs := prefStore.Get()

	trades := repo.Trades()
	stats := premiumo.CalculateStats(trades, on)

	var b strings.Builder
	b.WriteString(renderer.SummaryMarkdown(stats, on, prefs))
	if c.breakdown {
		b.WriteString("\n")
		b.WriteString(renderer.MonthsMarkdown(premiumo.PremiumByMonth(trades), prefs))
		b.WriteString("\n")
		b.WriteString(renderer.SymbolsMarkdown(premiumo.PremiumBySymbol(trades), prefs))
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

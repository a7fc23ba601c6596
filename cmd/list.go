package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/google/subcommands"
	"github.com/premiumo/premiumo"
	"github.com/premiumo/premiumo/renderer"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	sortField string
	desc      bool
	filter    string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list recorded trades" }
func (*listCmd) Usage() string {
	return `pplus list [-sort <field>] [-desc] [-filter <all|covered_call|cash_secured_put>]

  Lists trades as a table. Sort field is one of dateOpened, expiration,
  premium, symbol. Defaults come from the stored preferences.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sortField, "sort", "", "Sort field (defaults from preferences).")
	f.BoolVar(&c.desc, "desc", false, "Sort descending.")
	f.StringVar(&c.filter, "filter", "", "Filter by trade type (defaults from preferences).")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prefs, err := openPreferences()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		return subcommands.ExitFailure
	}
	p := prefs.Get()

	sortField := c.sortField
	desc := c.desc
	filter := c.filter
	if sortField == "" {
		sortField = p.DefaultSortField
		desc = p.DefaultSortDesc
	}
	if filter == "" {
		filter = p.DefaultFilter
	}

	repo, err := openRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		return subcommands.ExitFailure
	}

	trades := repo.Trades()
	if filter != "" && filter != "all" {
		kept := trades[:0]
		for _, t := range trades {
			if string(t.Type) == filter {
				kept = append(kept, t)
			}
		}
		trades = kept
	}

	sortTrades(trades, sortField, desc)

	printMarkdown(renderer.TradesMarkdown(trades, p))
	return subcommands.ExitSuccess
}

// sortTrades orders trades by the given field. Ties keep insertion order,
// the display tie-break the storage layer guarantees.
func sortTrades(trades []premiumo.Trade, field string, desc bool) {
	less := func(a, b premiumo.Trade) bool { return a.DateOpened.Before(b.DateOpened) }
	switch field {
	case "expiration":
		less = func(a, b premiumo.Trade) bool { return a.Expiration.Before(b.Expiration) }
	case "premium":
		less = func(a, b premiumo.Trade) bool { return a.TotalPremium().LessThan(b.TotalPremium()) }
	case "symbol":
		less = func(a, b premiumo.Trade) bool { return a.Symbol < b.Symbol }
	}
	sort.SliceStable(trades, func(i, j int) bool {
		if desc {
			return less(trades[j], trades[i])
		}
		return less(trades[i], trades[j])
	})
}

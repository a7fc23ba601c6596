package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/premiumo/premiumo"
)

// prefsCmd holds the flags for the 'prefs' subcommand.
type prefsCmd struct {
	currencyStyle string
	decimals      int
	dateFormat    string
	sortField     string
	sortDesc      bool
	filter        string
	compact       bool
	costCard      bool
}

func (*prefsCmd) Name() string     { return "prefs" }
func (*prefsCmd) Synopsis() string { return "show or change display preferences" }
func (*prefsCmd) Usage() string {
	return `pplus prefs [-currency-style <symbol|code|plain>] [-decimals <0-4>] [-date-format <pattern>] [-sort <field>] [-sort-desc] [-filter <type>] [-compact] [-cost-card]

  Without flags, prints the current preferences. Each flag that is set
  updates the corresponding preference; the rest keep their value.
`
}

func (c *prefsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currencyStyle, "currency-style", "", "Currency rendering: symbol, code or plain.")
	f.IntVar(&c.decimals, "decimals", 2, "Currency decimals, 0 to 4.")
	f.StringVar(&c.dateFormat, "date-format", "", "Date pattern, e.g. \"yyyy-MM-dd\".")
	f.StringVar(&c.sortField, "sort", "", "Default sort field for listings.")
	f.BoolVar(&c.sortDesc, "sort-desc", true, "Default sort direction, descending.")
	f.StringVar(&c.filter, "filter", "", "Default type filter for listings.")
	f.BoolVar(&c.compact, "compact", false, "Compact metrics display.")
	f.BoolVar(&c.costCard, "cost-card", true, "Show the buyback-cost card on the dashboard.")
}

func (c *prefsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openPreferences()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		return subcommands.ExitFailure
	}

	// Only flags the user actually set are applied, so a prefs call is a
	// partial update over the stored value.
	set := map[string]bool{}
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if len(set) == 0 {
		data, err := json.MarshalIndent(store.Get(), "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(data))
		return subcommands.ExitSuccess
	}

	ok := store.Update(func(p *premiumo.Preferences) {
		if set["currency-style"] {
			p.CurrencyStyle = premiumo.CurrencyStyle(c.currencyStyle)
		}
		if set["decimals"] {
			p.CurrencyDecimals = c.decimals
		}
		if set["date-format"] {
			p.DateFormat = c.dateFormat
		}
		if set["sort"] {
			p.DefaultSortField = c.sortField
		}
		if set["sort-desc"] {
			p.DefaultSortDesc = c.sortDesc
		}
		if set["filter"] {
			p.DefaultFilter = c.filter
		}
		if set["compact"] {
			p.MetricsCompact = c.compact
		}
		if set["cost-card"] {
			p.DashboardShowCostCard = c.costCard
		}
	})
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: preferences could not be persisted\n")
		return subcommands.ExitFailure
	}

	fmt.Println("Preferences updated")
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/premiumo/premiumo"
	"github.com/shopspring/decimal"
)

// closeCmd holds the flags for the 'close' subcommand.
type closeCmd struct {
	id      string
	status  string
	date    string
	buyback string
}

func (*closeCmd) Name() string     { return "close" }
func (*closeCmd) Synopsis() string { return "resolve an open position" }
func (*closeCmd) Usage() string {
	return `pplus close -id <trade-id> [-status <closed|assigned|expired>] [-date <date>] [-buyback <cost>]

  Marks a position as resolved. A buyback cost records what was paid to buy
  the option back before expiration.
`
}

func (c *closeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Trade id to close.")
	f.StringVar(&c.status, "status", string(premiumo.StatusClosed), "Resolution: closed, assigned or expired.")
	f.StringVar(&c.date, "date", premiumo.Today().String(), "Date the position was resolved.")
	f.StringVar(&c.buyback, "buyback", "", "Total cost paid to close early, if any.")
}

func (c *closeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintf(os.Stderr, "Error: -id is required\n")
		return subcommands.ExitUsageError
	}

	status, err := premiumo.ParseTradeStatus(c.status)
	if err != nil || !status.Resolved() {
		fmt.Fprintf(os.Stderr, "Error: -status must be closed, assigned or expired\n")
		return subcommands.ExitUsageError
	}

	closed, err := premiumo.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing close date: %v\n", err)
		return subcommands.ExitUsageError
	}

	patch := premiumo.TradePatch{Status: &status, DateClosed: &closed}
	if c.buyback != "" {
		cost, err := decimal.NewFromString(c.buyback)
		if err != nil || cost.IsNegative() {
			fmt.Fprintf(os.Stderr, "Error: invalid buyback cost %q\n", c.buyback)
			return subcommands.ExitUsageError
		}
		patch.BuybackCost = &cost
	}

	repo, err := openRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		return subcommands.ExitFailure
	}
	if !repo.Update(c.id, patch) {
		fmt.Fprintf(os.Stderr, "Error: no trade with id %q was updated\n", c.id)
		return subcommands.ExitFailure
	}

	fmt.Printf("Trade %s marked %s\n", c.id, status)
	return subcommands.ExitSuccess
}

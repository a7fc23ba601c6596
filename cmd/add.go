package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/premiumo/premiumo"
	"github.com/premiumo/premiumo/id"
	"github.com/shopspring/decimal"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	tradeType string
	symbol    string
	strike    string
	premium   string
	quantity  int
	opened    string
	expires   string
	notes     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new option-selling position" }
func (*addCmd) Usage() string {
	return `pplus add -type <covered_call|cash_secured_put> -symbol <ticker> -strike <price> -premium <per-share> [-qty <contracts>] [-opened <date>] -expires <date> [-notes <text>]

  Records a new open position. The premium is per share, the quantity counts
  contracts. The trade id is generated.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tradeType, "type", "", "Trade type: covered_call or cash_secured_put.")
	f.StringVar(&c.symbol, "symbol", "", "Underlying ticker.")
	f.StringVar(&c.strike, "strike", "", "Strike price.")
	f.StringVar(&c.premium, "premium", "", "Premium received per share.")
	f.IntVar(&c.quantity, "qty", 1, "Number of contracts.")
	f.StringVar(&c.opened, "opened", premiumo.Today().String(), "Date the position was opened.")
	f.StringVar(&c.expires, "expires", "", "Expiration date.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tradeType, err := premiumo.ParseTradeType(c.tradeType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.symbol == "" || c.strike == "" || c.premium == "" || c.expires == "" {
		fmt.Fprintf(os.Stderr, "Error: -symbol, -strike, -premium and -expires are required\n")
		return subcommands.ExitUsageError
	}

	strike, err := decimal.NewFromString(c.strike)
	if err != nil || strike.IsNegative() {
		fmt.Fprintf(os.Stderr, "Error: invalid strike %q\n", c.strike)
		return subcommands.ExitUsageError
	}
	premium, err := decimal.NewFromString(c.premium)
	if err != nil || premium.IsNegative() {
		fmt.Fprintf(os.Stderr, "Error: invalid premium %q\n", c.premium)
		return subcommands.ExitUsageError
	}

	opened, err := premiumo.ParseDate(c.opened)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing open date: %v\n", err)
		return subcommands.ExitUsageError
	}
	expires, err := premiumo.ParseDate(c.expires)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing expiration: %v\n", err)
		return subcommands.ExitUsageError
	}

	qty := c.quantity
	if qty < 1 {
		qty = 1
	}

	trade := premiumo.Trade{
		ID:         id.New(),
		Type:       tradeType,
		Symbol:     strings.ToUpper(c.symbol),
		Strike:     strike,
		Premium:    premium,
		Expiration: expires,
		Quantity:   qty,
		DateOpened: opened,
		Status:     premiumo.StatusOpen,
		Notes:      c.notes,
	}

	repo, err := openRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		return subcommands.ExitFailure
	}
	if !repo.Add(trade) {
		fmt.Fprintf(os.Stderr, "Error: the trade could not be persisted\n")
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s %s %s@%s ×%d (id %s)\n",
		trade.Type.Label(), trade.Symbol, trade.Premium, trade.Strike, trade.Quantity, trade.ID)
	return subcommands.ExitSuccess
}

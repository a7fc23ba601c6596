package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/premiumo/premiumo"
)

// clearCmd holds the flags for the 'clear' subcommand.
type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "remove all stored data" }
func (*clearCmd) Usage() string {
	return `pplus clear -force

  Removes every stored key: trades, their backup and preferences. There is
  no undo, which is why -force is required.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Actually delete the data.")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintf(os.Stderr, "Refusing to delete all data without -force\n")
		return subcommands.ExitUsageError
	}

	kv, err := openKV()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := premiumo.NewStore(kv).ClearAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing data: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("All data removed")
	return subcommands.ExitSuccess
}

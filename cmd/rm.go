package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// rmCmd holds the flags for the 'rm' subcommand.
type rmCmd struct {
	id string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a recorded trade" }
func (*rmCmd) Usage() string {
	return `pplus rm -id <trade-id>

  Deletes the trade with the given id. Deletion is permanent; the storage
  backup only lags one write behind.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Trade id to delete.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintf(os.Stderr, "Error: -id is required\n")
		return subcommands.ExitUsageError
	}

	repo, err := openRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		return subcommands.ExitFailure
	}

	before := len(repo.Trades())
	if !repo.Delete(c.id) {
		fmt.Fprintf(os.Stderr, "Error: the deletion could not be persisted\n")
		return subcommands.ExitFailure
	}
	if removed := before - len(repo.Trades()); removed == 0 {
		fmt.Printf("No trade with id %s\n", c.id)
	} else {
		fmt.Printf("Deleted trade %s\n", c.id)
	}
	return subcommands.ExitSuccess
}

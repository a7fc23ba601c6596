package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/premiumo/premiumo"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export trades as CSV or JSON" }
func (*exportCmd) Usage() string {
	return `pplus export [-format <csv|json>] [-o <file>]

  Writes the full trade log to a file or stdout. The JSON form is a backup
  envelope that round-trips through the storage validator.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", "Export format: csv or json.")
	f.StringVar(&c.output, "o", "", "Output file (stdout when empty).")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, err := openRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		return subcommands.ExitFailure
	}
	trades := repo.Trades()

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	switch c.format {
	case "csv":
		err = premiumo.ExportCSV(w, trades)
	case "json":
		err = premiumo.ExportJSON(w, trades, time.Now())
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want csv or json)\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

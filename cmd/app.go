// Package cmd implements the CLI application to track options income.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/premiumo/premiumo"
)

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&closeCmd{},
	&rmCmd{},
	&listCmd{},
	&summaryCmd{},
	&exportCmd{},
	&prefsCmd{},
	&clearCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the config file (defaults to the user config dir)")

func configPath() string {
	if *configFile != "" {
		return *configFile
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(base, "premiumo", "config.yaml")
}

// openKV opens the storage backend selected by the configuration.
func openKV() (premiumo.KV, error) {
	cfg, err := premiumo.LoadConfig(configPath())
	if err != nil {
		return nil, err
	}
	return cfg.OpenKV()
}

// openRepository opens the trade repository on the configured backend.
func openRepository() (*premiumo.Repository, error) {
	kv, err := openKV()
	if err != nil {
		return nil, err
	}
	return premiumo.NewRepository(premiumo.NewStore(kv)), nil
}

// openPreferences opens the preference store on the configured backend.
func openPreferences() (*premiumo.PreferencesStore, error) {
	kv, err := openKV()
	if err != nil {
		return nil, err
	}
	return premiumo.NewPreferencesStore(kv), nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}

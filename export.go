package premiumo

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// csvHeader is the fixed column set of the CSV export.
var csvHeader = []string{
	"Type", "Symbol", "Strike", "Premium", "Qty", "Total",
	"Opened", "Expiration", "Status", "BuybackCost", "Notes",
}

// ExportCSV writes the trades as CSV: a header row then one row per trade
// in input order. Every field is double-quoted with embedded quotes doubled;
// the Total and BuybackCost columns are plain numbers at exactly two
// decimals, and Type is the human label, not the enum tag.
//
// Rows are assembled by hand because encoding/csv only quotes fields that
// need it, and this format quotes everything.
func ExportCSV(w io.Writer, trades []Trade) error {
	rows := make([]string, 0, len(trades)+1)
	rows = append(rows, quoteRow(csvHeader))
	for _, t := range trades {
		rows = append(rows, quoteRow([]string{
			t.Type.Label(),
			t.Symbol,
			t.Strike.String(),
			t.Premium.String(),
			strconv.Itoa(t.Quantity),
			t.TotalPremium().StringFixed(2),
			t.DateOpened.String(),
			t.Expiration.String(),
			string(t.Status),
			t.Buyback().StringFixed(2),
			t.Notes,
		}))
	}
	if _, err := io.WriteString(w, strings.Join(rows, "\n")); err != nil {
		return fmt.Errorf("could not write CSV export: %w", err)
	}
	return nil
}

func quoteRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// ExportVersion identifies the JSON export envelope revision.
const ExportVersion = 1

type jsonExport struct {
	ExportedAt string  `json:"exportedAt"`
	Version    int     `json:"version"`
	Trades     []Trade `json:"trades"`
}

// ExportJSON writes the trades verbatim inside a pretty-printed envelope
// stamped with the encoding time.
func ExportJSON(w io.Writer, trades []Trade, at time.Time) error {
	if trades == nil {
		trades = []Trade{}
	}
	env := jsonExport{
		ExportedAt: at.UTC().Format(time.RFC3339),
		Version:    ExportVersion,
		Trades:     trades,
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal JSON export: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write JSON export: %w", err)
	}
	return nil
}

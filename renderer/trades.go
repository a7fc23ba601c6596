package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/premiumo/premiumo"
)

// TradesMarkdown renders the trade list as a markdown table in the given
// order. Dates and amounts honor the display preferences.
func TradesMarkdown(trades []premiumo.Trade, prefs premiumo.Preferences) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Trades (%d)", len(trades)))

	rows := make([][]string, 0, len(trades))
	for _, t := range trades {
		closed := ""
		if t.DateClosed != nil {
			closed = premiumo.FormatDate(*t.DateClosed, prefs)
		}
		rows = append(rows, []string{
			t.ID,
			t.Type.Label(),
			t.Symbol,
			t.Strike.String(),
			premiumo.FormatAmount(t.TotalPremium(), prefs),
			fmt.Sprintf("%d", t.Quantity),
			premiumo.FormatDate(t.DateOpened, prefs),
			premiumo.FormatDate(t.Expiration, prefs),
			closed,
			string(t.Status),
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"ID", "Type", "Symbol", "Strike", "Premium", "Qty", "Opened", "Expires", "Closed", "Status"},
		Rows:   rows,
	})

	return doc.String()
}

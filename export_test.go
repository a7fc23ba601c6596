package premiumo

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestExportCSV(t *testing.T) {
	trades := []Trade{{
		ID: "a1", Type: CashSecuredPut, Symbol: "TSLA",
		Strike: dec(200), Premium: dec(3.15), Quantity: 3,
		DateOpened: NewDate(2024, 5, 1), Expiration: NewDate(2024, 6, 21),
		Status: StatusOpen, Notes: `contains "quotes"`,
	}}

	var buf strings.Builder
	if err := ExportCSV(&buf, trades); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row", len(lines))
	}

	wantHeader := `"Type","Symbol","Strike","Premium","Qty","Total","Opened","Expiration","Status","BuybackCost","Notes"`
	if lines[0] != wantHeader {
		t.Errorf("header:\n got %s\nwant %s", lines[0], wantHeader)
	}
	wantRow := `"Cash Secured Put","TSLA","200","3.15","3","9.45","2024-05-01","2024-06-21","open","0.00","contains ""quotes"""`
	if lines[1] != wantRow {
		t.Errorf("row:\n got %s\nwant %s", lines[1], wantRow)
	}
}

func TestExportCSV_ClosedCall(t *testing.T) {
	cost := dec(1.2)
	trades := []Trade{{
		ID: "b2", Type: CoveredCall, Symbol: "AAPL",
		Strike: dec(150.5), Premium: dec(2.5), Quantity: 2,
		DateOpened: NewDate(2024, 5, 15), Expiration: NewDate(2024, 6, 21),
		Status: StatusClosed, BuybackCost: &cost,
	}}

	var buf strings.Builder
	if err := ExportCSV(&buf, trades); err != nil {
		t.Fatal(err)
	}
	row := strings.Split(buf.String(), "\n")[1]
	want := `"Covered Call","AAPL","150.5","2.5","2","5.00","2024-05-15","2024-06-21","closed","1.20",""`
	if row != want {
		t.Errorf("row:\n got %s\nwant %s", row, want)
	}
}

func TestExportCSV_Empty(t *testing.T) {
	var buf strings.Builder
	if err := ExportCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if strings.Count(got, "\n") != 0 || !strings.HasPrefix(got, `"Type",`) {
		t.Errorf("empty export should be the header line alone, got %q", got)
	}
}

func TestExportJSON(t *testing.T) {
	trades := []Trade{{
		ID: "a1", Type: CoveredCall, Symbol: "AAPL",
		Strike: dec(150), Premium: dec(2.5), Quantity: 2,
		DateOpened: NewDate(2024, 5, 15), Expiration: NewDate(2024, 6, 21),
		Status: StatusOpen,
	}}
	at := time.Date(2024, 5, 20, 10, 30, 0, 0, time.FixedZone("CEST", 2*3600))

	var buf strings.Builder
	if err := ExportJSON(&buf, trades, at); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.HasSuffix(got, "\n") {
		t.Error("export should end with a newline")
	}

	var envelope struct {
		ExportedAt string          `json:"exportedAt"`
		Version    int             `json:"version"`
		Trades     json.RawMessage `json:"trades"`
	}
	if err := json.Unmarshal([]byte(got), &envelope); err != nil {
		t.Fatal(err)
	}
	if envelope.Version != ExportVersion {
		t.Errorf("version = %d, want %d", envelope.Version, ExportVersion)
	}
	if envelope.ExportedAt != "2024-05-20T08:30:00Z" {
		t.Errorf("exportedAt = %q, want the UTC encoding time", envelope.ExportedAt)
	}
	var decoded []Trade
	if err := json.Unmarshal(envelope.Trades, &decoded); err != nil {
		t.Fatal(err)
	}
	if mustJSON(t, decoded) != mustJSON(t, trades) {
		t.Errorf("trades do not survive the envelope:\n got %s\nwant %s", mustJSON(t, decoded), mustJSON(t, trades))
	}
}

func TestExportJSON_EmptyArray(t *testing.T) {
	var buf strings.Builder
	if err := ExportJSON(&buf, nil, time.Now()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"trades": []`) {
		t.Errorf("nil trades must encode as an empty array, got:\n%s", buf.String())
	}
}

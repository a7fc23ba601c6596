package premiumo

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// StorageVersion is the current revision of the persisted payload shape.
// Bump it when the shape changes and register a step in migrations.
const StorageVersion = 1

// StoragePayload is the envelope persisted to the primary storage key.
type StoragePayload struct {
	V      int     `json:"v"`
	Trades []Trade `json:"trades"`
}

// DefaultPayload returns an empty payload at the current version.
func DefaultPayload() StoragePayload {
	return StoragePayload{V: StorageVersion, Trades: []Trade{}}
}

// migrations maps a stored schema version to the transform that brings a
// payload one version forward. Version 0 is the pre-envelope format where
// trades were persisted as a bare array.
var migrations = map[int]func(StoragePayload) StoragePayload{
	0: func(p StoragePayload) StoragePayload {
		// The bare array carried no version; the records themselves are
		// already normalized by the time migration runs.
		p.V = 1
		return p
	},
}

func migrate(p StoragePayload) StoragePayload {
	for p.V < StorageVersion {
		step, ok := migrations[p.V]
		if !ok {
			// No transform registered: stamp the current version rather
			// than fail, the records were already validated field by field.
			p.V = StorageVersion
			return p
		}
		p = step(p)
	}
	return p
}

// ValidatePayload coerces arbitrary, possibly corrupted or legacy-shaped,
// input into a well formed StoragePayload. It never fails: unknown shapes
// degrade to the empty default payload and invalid records are dropped so a
// single bad trade cannot prevent the rest of the data from loading.
//
// Three shapes are recognized, in priority order: the {v, trades} envelope,
// the legacy bare array of trades, and anything else (empty default).
func ValidatePayload(raw []byte) StoragePayload {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return DefaultPayload()
	}

	switch v := parsed.(type) {
	case map[string]any:
		payload := StoragePayload{V: StorageVersion, Trades: validTrades(v["trades"])}
		if ver, ok := v["v"].(float64); ok {
			payload.V = int(ver)
		}
		return payload
	case []any:
		// Legacy: stored as a plain array, before the envelope existed.
		return migrate(StoragePayload{V: 0, Trades: validTrades(parsed)})
	default:
		return DefaultPayload()
	}
}

// validTrades normalizes every valid record of a decoded JSON array,
// silently dropping the rest.
func validTrades(raw any) []Trade {
	arr, ok := raw.([]any)
	if !ok {
		return []Trade{}
	}
	trades := make([]Trade, 0, len(arr))
	for _, e := range arr {
		if t, ok := normalizeTrade(e); ok {
			trades = append(trades, t)
		}
	}
	return trades
}

// isTrade reports whether a decoded JSON value has every mandatory field
// with the correct type. Each field is checked explicitly, none assumed.
func isTrade(o map[string]any) bool {
	if _, ok := o["id"].(string); !ok {
		return false
	}
	if s, ok := o["type"].(string); !ok || !isTradeType(s) {
		return false
	}
	if _, ok := o["symbol"].(string); !ok {
		return false
	}
	if _, ok := o["strike"].(float64); !ok {
		return false
	}
	if _, ok := o["premium"].(float64); !ok {
		return false
	}
	if !isStoredDate(o["expiration"]) {
		return false
	}
	if _, ok := o["quantity"].(float64); !ok {
		return false
	}
	if !isStoredDate(o["dateOpened"]) {
		return false
	}
	if s, ok := o["status"].(string); !ok || !isTradeStatus(s) {
		return false
	}
	return true
}

func isTradeType(s string) bool {
	_, err := ParseTradeType(s)
	return err == nil
}

func isTradeStatus(s string) bool {
	_, err := ParseTradeStatus(s)
	return err == nil
}

func isStoredDate(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := parseStoredDate(s)
	return err == nil
}

// normalizeTrade validates a decoded JSON value and coerces it into a Trade:
// the symbol is upper-cased, the quantity floored and clamped to at least one
// contract, and optional fields are kept only when usable (a buyback cost
// must be non-negative). Normalization is idempotent.
func normalizeTrade(raw any) (Trade, bool) {
	o, ok := raw.(map[string]any)
	if !ok || !isTrade(o) {
		return Trade{}, false
	}

	qty := int(math.Floor(o["quantity"].(float64)))
	if qty < 1 {
		qty = 1
	}

	expiration, _ := parseStoredDate(o["expiration"].(string))
	opened, _ := parseStoredDate(o["dateOpened"].(string))

	t := Trade{
		ID:         o["id"].(string),
		Type:       TradeType(o["type"].(string)),
		Symbol:     strings.ToUpper(o["symbol"].(string)),
		Strike:     decimal.NewFromFloat(o["strike"].(float64)),
		Premium:    decimal.NewFromFloat(o["premium"].(float64)),
		Expiration: expiration,
		Quantity:   qty,
		DateOpened: opened,
		Status:     TradeStatus(o["status"].(string)),
	}

	if raw, present := o["dateClosed"]; present {
		if s, ok := raw.(string); ok {
			if d, err := parseStoredDate(s); err == nil {
				t.DateClosed = &d
			}
		}
	}
	if raw, present := o["notes"]; present {
		if s, ok := coerceString(raw); ok {
			t.Notes = s
		}
	}
	if raw, present := o["buybackCost"]; present {
		if f, ok := raw.(float64); ok && f >= 0 {
			cost := decimal.NewFromFloat(f)
			t.BuybackCost = &cost
		}
	}
	return t, true
}

// coerceString renders a JSON scalar as a string, the way a free-text field
// tolerates sloppy input. Composite values are rejected.
func coerceString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(s), true
	default:
		return "", false
	}
}

package premiumo

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TradeType identifies the kind of option-selling position.
type TradeType string

const (
	// CoveredCall is a call sold against shares already owned.
	CoveredCall TradeType = "covered_call"
	// CashSecuredPut is a put sold against cash reserved for assignment.
	CashSecuredPut TradeType = "cash_secured_put"
)

// Label returns the human readable name of the trade type.
func (t TradeType) Label() string {
	switch t {
	case CoveredCall:
		return "Covered Call"
	case CashSecuredPut:
		return "Cash Secured Put"
	default:
		return string(t)
	}
}

// ParseTradeType parses a string into a TradeType.
func ParseTradeType(s string) (TradeType, error) {
	switch TradeType(s) {
	case CoveredCall:
		return CoveredCall, nil
	case CashSecuredPut:
		return CashSecuredPut, nil
	default:
		return "", fmt.Errorf("unknown trade type: %q", s)
	}
}

// TradeStatus is the lifecycle state of a position. Open is the only
// non-terminal state.
type TradeStatus string

const (
	StatusOpen     TradeStatus = "open"
	StatusClosed   TradeStatus = "closed"
	StatusAssigned TradeStatus = "assigned"
	StatusExpired  TradeStatus = "expired"
)

// Resolved reports whether the position has reached a terminal state.
func (s TradeStatus) Resolved() bool {
	return s == StatusClosed || s == StatusAssigned || s == StatusExpired
}

// ParseTradeStatus parses a string into a TradeStatus.
func ParseTradeStatus(s string) (TradeStatus, error) {
	switch TradeStatus(s) {
	case StatusOpen, StatusClosed, StatusAssigned, StatusExpired:
		return TradeStatus(s), nil
	default:
		return "", fmt.Errorf("unknown trade status: %q", s)
	}
}

// Trade is a single option-selling position. Premium is per share, not per
// contract; Quantity counts contracts.
type Trade struct {
	ID          string           `json:"id"`
	Type        TradeType        `json:"type"`
	Symbol      string           `json:"symbol"`
	Strike      decimal.Decimal  `json:"strike"`
	Premium     decimal.Decimal  `json:"premium"`
	Expiration  Date             `json:"expiration"`
	Quantity    int              `json:"quantity"`
	DateOpened  Date             `json:"dateOpened"`
	DateClosed  *Date            `json:"dateClosed,omitempty"`
	Status      TradeStatus      `json:"status"`
	Notes       string           `json:"notes,omitempty"`
	BuybackCost *decimal.Decimal `json:"buybackCost,omitempty"`
}

// TotalPremium returns premium × quantity.
func (t Trade) TotalPremium() decimal.Decimal {
	return t.Premium.Mul(decimal.NewFromInt(int64(t.Quantity)))
}

// Buyback returns the cost paid to close the position early, zero when none
// was recorded.
func (t Trade) Buyback() decimal.Decimal {
	if t.BuybackCost == nil {
		return decimal.Zero
	}
	return *t.BuybackCost
}

// NetProfit returns total premium minus the buyback cost.
func (t Trade) NetProfit() decimal.Decimal {
	return t.TotalPremium().Sub(t.Buyback())
}

// TradePatch carries a partial update for a trade. Nil fields are left
// untouched by Apply, mirroring a shallow merge.
type TradePatch struct {
	Type        *TradeType
	Symbol      *string
	Strike      *decimal.Decimal
	Premium     *decimal.Decimal
	Expiration  *Date
	Quantity    *int
	DateOpened  *Date
	DateClosed  *Date
	Status      *TradeStatus
	Notes       *string
	BuybackCost *decimal.Decimal
}

// Apply merges the set fields of the patch over the trade.
func (p TradePatch) Apply(t Trade) Trade {
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Symbol != nil {
		t.Symbol = *p.Symbol
	}
	if p.Strike != nil {
		t.Strike = *p.Strike
	}
	if p.Premium != nil {
		t.Premium = *p.Premium
	}
	if p.Expiration != nil {
		t.Expiration = *p.Expiration
	}
	if p.Quantity != nil {
		t.Quantity = *p.Quantity
	}
	if p.DateOpened != nil {
		t.DateOpened = *p.DateOpened
	}
	if p.DateClosed != nil {
		d := *p.DateClosed
		t.DateClosed = &d
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.BuybackCost != nil {
		c := *p.BuybackCost
		t.BuybackCost = &c
	}
	return t
}

package premiumo

import (
	"encoding/json"
	"sync"
)

// CurrencyStyle selects how monetary values are rendered.
type CurrencyStyle string

const (
	CurrencySymbol CurrencyStyle = "symbol" // $1,234.50
	CurrencyCode   CurrencyStyle = "code"   // USD 1,234.50
	CurrencyPlain  CurrencyStyle = "plain"  // 1,234.50
)

// Date display patterns. The stored tokens are kept as-is so preference
// files round-trip across implementations; formatting maps them to Go
// layouts (see FormatDate).
const (
	DateStyleDefault = "MMM dd, yyyy"
	DateStyleISO     = "yyyy-MM-dd"
	DateStyleEU      = "dd/MM/yyyy"
	DateStyleUS      = "MM/dd/yyyy"
)

// Preferences are the user display, sort and filter settings. They never
// affect what is stored, only how it is presented.
type Preferences struct {
	CurrencyStyle         CurrencyStyle `json:"currencyStyle"`
	CurrencyDecimals      int           `json:"currencyDecimals"`
	DateFormat            string        `json:"dateFormat"`
	DefaultSortField      string        `json:"defaultSortField"`
	DefaultSortDesc       bool          `json:"defaultSortDesc"`
	DefaultFilter         string        `json:"defaultFilter"`
	MetricsCompact        bool          `json:"metricsCompact"`
	DashboardShowCostCard bool          `json:"dashboardShowCostCard"`
}

// DefaultPreferences returns the out-of-the-box settings.
func DefaultPreferences() Preferences {
	return Preferences{
		CurrencyStyle:         CurrencySymbol,
		CurrencyDecimals:      2,
		DateFormat:            DateStyleDefault,
		DefaultSortField:      "dateOpened",
		DefaultSortDesc:       true,
		DefaultFilter:         "all",
		MetricsCompact:        false,
		DashboardShowCostCard: true,
	}
}

// PreferencesStore persists preferences on a KV backend and notifies
// subscribers after every successful write. Notifications carry no payload;
// subscribers re-read the preferences themselves.
type PreferencesStore struct {
	kv KV

	mu   sync.Mutex
	subs map[int]func()
	next int
}

// NewPreferencesStore returns a store on the given backend. kv may be nil,
// in which case reads return defaults and writes report failure.
func NewPreferencesStore(kv KV) *PreferencesStore {
	return &PreferencesStore{kv: kv, subs: make(map[int]func())}
}

// Get reads the stored preferences merged over the defaults, so a partial
// or legacy preference object still yields a complete value. Unreadable
// data degrades to the defaults.
func (p *PreferencesStore) Get() Preferences {
	prefs := DefaultPreferences()
	if p == nil || p.kv == nil {
		return prefs
	}
	raw, ok := p.kv.Get(KeyPreferences)
	if !ok || raw == "" {
		return prefs
	}
	// Unmarshalling over the defaults value is the merge: absent keys keep
	// their default.
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return DefaultPreferences()
	}
	if prefs.CurrencyDecimals < 0 {
		prefs.CurrencyDecimals = 0
	}
	if prefs.CurrencyDecimals > 4 {
		prefs.CurrencyDecimals = 4
	}
	return prefs
}

// Set persists the preferences and, on success, notifies every subscriber.
func (p *PreferencesStore) Set(prefs Preferences) bool {
	if p == nil || p.kv == nil {
		return false
	}
	data, err := json.Marshal(prefs)
	if err != nil {
		return false
	}
	if p.kv.Set(KeyPreferences, string(data)) != nil {
		return false
	}
	p.notify()
	return true
}

// Update reads the current preferences, lets the caller mutate them, and
// writes the result back. It is the partial-update path.
func (p *PreferencesStore) Update(mutate func(*Preferences)) bool {
	prefs := p.Get()
	mutate(&prefs)
	return p.Set(prefs)
}

// Subscribe registers fn to run after every preference write. It returns a
// cancel function that removes the subscription.
func (p *PreferencesStore) Subscribe(fn func()) (cancel func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.next
	p.next++
	p.subs[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}

func (p *PreferencesStore) notify() {
	p.mu.Lock()
	subs := make([]func(), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

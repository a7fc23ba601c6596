package premiumo

import (
	"reflect"
	"testing"
)

func TestPreferencesGet_Defaults(t *testing.T) {
	store := NewPreferencesStore(NewMemoryKV())
	if got := store.Get(); !reflect.DeepEqual(got, DefaultPreferences()) {
		t.Errorf("empty backend should yield defaults, got %+v", got)
	}
}

func TestPreferencesGet_PartialMerge(t *testing.T) {
	kv := NewMemoryKV()
	if err := kv.Set(KeyPreferences, `{"currencyStyle":"code","metricsCompact":true}`); err != nil {
		t.Fatal(err)
	}
	store := NewPreferencesStore(kv)

	got := store.Get()
	if got.CurrencyStyle != CurrencyCode || !got.MetricsCompact {
		t.Errorf("stored keys not applied: %+v", got)
	}
	if got.CurrencyDecimals != 2 || got.DateFormat != DateStyleDefault || !got.DashboardShowCostCard {
		t.Errorf("absent keys must keep defaults: %+v", got)
	}
}

func TestPreferencesGet_ClampDecimals(t *testing.T) {
	tests := []struct {
		stored string
		want   int
	}{
		{`{"currencyDecimals":-3}`, 0},
		{`{"currencyDecimals":9}`, 4},
		{`{"currencyDecimals":0}`, 0},
	}
	for _, tt := range tests {
		kv := NewMemoryKV()
		kv.Set(KeyPreferences, tt.stored)
		if got := NewPreferencesStore(kv).Get().CurrencyDecimals; got != tt.want {
			t.Errorf("Get() with %s: currencyDecimals = %d, want %d", tt.stored, got, tt.want)
		}
	}
}

func TestPreferencesGet_Corrupt(t *testing.T) {
	kv := NewMemoryKV()
	kv.Set(KeyPreferences, `{nope`)
	if got := NewPreferencesStore(kv).Get(); !reflect.DeepEqual(got, DefaultPreferences()) {
		t.Errorf("corrupt preferences should degrade to defaults, got %+v", got)
	}
}

func TestPreferencesSetAndGet(t *testing.T) {
	store := NewPreferencesStore(NewMemoryKV())

	want := DefaultPreferences()
	want.CurrencyStyle = CurrencyPlain
	want.DateFormat = DateStyleEU
	if !store.Set(want) {
		t.Fatal("Set failed")
	}
	if got := store.Get(); !reflect.DeepEqual(got, want) {
		t.Errorf("round-trip: got %+v, want %+v", got, want)
	}
}

func TestPreferencesSet_NilBackend(t *testing.T) {
	store := NewPreferencesStore(nil)
	if store.Set(DefaultPreferences()) {
		t.Error("Set without a backend must report failure")
	}
	if got := store.Get(); !reflect.DeepEqual(got, DefaultPreferences()) {
		t.Errorf("Get without a backend should yield defaults, got %+v", got)
	}
}

func TestPreferencesSubscribe(t *testing.T) {
	store := NewPreferencesStore(NewMemoryKV())

	var a, b int
	cancelA := store.Subscribe(func() { a++ })
	store.Subscribe(func() { b++ })

	store.Set(DefaultPreferences())
	if a != 1 || b != 1 {
		t.Fatalf("after one write: a=%d b=%d, want 1 1", a, b)
	}

	// Subscribers are notified per write, not per change.
	store.Set(DefaultPreferences())
	if a != 2 || b != 2 {
		t.Fatalf("after two writes: a=%d b=%d, want 2 2", a, b)
	}

	cancelA()
	store.Update(func(p *Preferences) { p.MetricsCompact = true })
	if a != 2 {
		t.Errorf("cancelled subscriber still notified: a=%d", a)
	}
	if b != 3 {
		t.Errorf("remaining subscriber missed a write: b=%d", b)
	}
}

func TestPreferencesSubscribe_NoNotifyOnFailedWrite(t *testing.T) {
	store := NewPreferencesStore(nil)
	var calls int
	store.Subscribe(func() { calls++ })

	store.Set(DefaultPreferences())
	if calls != 0 {
		t.Errorf("failed write must not notify, got %d calls", calls)
	}
}

func TestPreferencesUpdate(t *testing.T) {
	store := NewPreferencesStore(NewMemoryKV())
	store.Set(func() Preferences {
		p := DefaultPreferences()
		p.DefaultFilter = "open"
		return p
	}())

	if !store.Update(func(p *Preferences) { p.DefaultSortDesc = false }) {
		t.Fatal("Update failed")
	}

	got := store.Get()
	if got.DefaultSortDesc {
		t.Error("mutation not applied")
	}
	if got.DefaultFilter != "open" {
		t.Errorf("untouched fields must survive an update, filter = %q", got.DefaultFilter)
	}
}

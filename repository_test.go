package premiumo

import (
	"testing"
)

func newTestRepository() (*Repository, *MemoryKV) {
	kv := NewMemoryKV()
	return NewRepository(NewStore(kv)), kv
}

// Full lifecycle: add, read back, update, delete.
func TestRepository_AddUpdateDeleteCycle(t *testing.T) {
	repo, _ := newTestRepository()

	added := repo.Add(Trade{
		ID: "1", Type: CoveredCall, Symbol: "AAPL",
		Strike: dec(150), Premium: dec(2.5), Quantity: 2,
		DateOpened: NewDate(2024, 1, 10), Expiration: NewDate(2024, 2, 16),
		Status: StatusOpen,
	})
	if !added {
		t.Fatalf("Add failed")
	}

	trades := repo.Trades()
	if len(trades) != 1 {
		t.Fatalf("got %d trades, want 1", len(trades))
	}
	if trades[0].Symbol != "AAPL" {
		t.Errorf("symbol = %q, want AAPL", trades[0].Symbol)
	}

	stats := CalculateStats(trades, NewDate(2024, 1, 31))
	if !stats.TotalPremium.Equal(dec(5.0)) {
		t.Errorf("totalPremium = %v, want 5.0", stats.TotalPremium)
	}

	closed := StatusClosed
	cost := dec(1.0)
	if !repo.Update("1", TradePatch{Status: &closed, BuybackCost: &cost}) {
		t.Fatalf("Update failed")
	}

	stats = CalculateStats(repo.Trades(), NewDate(2024, 1, 31))
	if !stats.TotalBuybackCost.Equal(dec(1.0)) {
		t.Errorf("totalBuybackCost = %v, want 1.0", stats.TotalBuybackCost)
	}
	if !stats.NetPremium.Equal(dec(4.0)) {
		t.Errorf("netPremium = %v, want 4.0", stats.NetPremium)
	}
	// A closed trade counts as a win even when a buyback cost was paid;
	// that asymmetry is documented product behavior.
	if !stats.WinRate.Equal(100) {
		t.Errorf("winRate = %v, want 100", stats.WinRate)
	}

	if !repo.Delete("1") {
		t.Fatalf("Delete failed")
	}
	if got := repo.Trades(); len(got) != 0 {
		t.Errorf("got %d trades after delete, want 0", len(got))
	}
}

// The merge is shallow: only set patch fields change.
func TestRepository_UpdateShallowMerge(t *testing.T) {
	repo, _ := newTestRepository()
	repo.Add(Trade{
		ID: "1", Type: CashSecuredPut, Symbol: "TSLA",
		Strike: dec(200), Premium: dec(3.15), Quantity: 3,
		DateOpened: NewDate(2024, 5, 1), Expiration: NewDate(2024, 6, 21),
		Status: StatusOpen, Notes: "original notes",
	})

	notes := "updated"
	repo.Update("1", TradePatch{Notes: &notes})

	got := repo.Trades()[0]
	if got.Notes != "updated" {
		t.Errorf("notes = %q, want updated", got.Notes)
	}
	if got.Symbol != "TSLA" || !got.Premium.Equal(dec(3.15)) || got.Status != StatusOpen {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

// An unknown id changes nothing and, importantly, does not rotate the
// backup key with a pointless save.
func TestRepository_UpdateUnknownID(t *testing.T) {
	repo, kv := newTestRepository()
	repo.Add(Trade{
		ID: "1", Type: CoveredCall, Symbol: "AAPL",
		Strike: dec(150), Premium: dec(2.5), Quantity: 1,
		DateOpened: NewDate(2024, 1, 10), Expiration: NewDate(2024, 2, 16),
		Status: StatusOpen,
	})
	backupBefore, _ := kv.Get(KeyTradesBackup)

	status := StatusClosed
	if repo.Update("missing", TradePatch{Status: &status}) {
		t.Errorf("Update of an unknown id should report no change")
	}

	if backupAfter, _ := kv.Get(KeyTradesBackup); backupAfter != backupBefore {
		t.Errorf("backup key rotated on a no-op update")
	}
	if got := repo.Trades()[0].Status; got != StatusOpen {
		t.Errorf("status = %q, want untouched open", got)
	}
}

// Delete filters every record with the id, so duplicates cannot survive.
func TestRepository_DeleteRemovesDuplicates(t *testing.T) {
	repo, _ := newTestRepository()
	for i := 0; i < 2; i++ {
		repo.Add(Trade{
			ID: "dup", Type: CoveredCall, Symbol: "AAPL",
			Strike: dec(150), Premium: dec(2.5), Quantity: 1,
			DateOpened: NewDate(2024, 1, 10), Expiration: NewDate(2024, 2, 16),
			Status: StatusOpen,
		})
	}
	repo.Add(Trade{
		ID: "keep", Type: CoveredCall, Symbol: "MSFT",
		Strike: dec(400), Premium: dec(1.5), Quantity: 1,
		DateOpened: NewDate(2024, 1, 11), Expiration: NewDate(2024, 2, 16),
		Status: StatusOpen,
	})

	repo.Delete("dup")

	got := repo.Trades()
	if len(got) != 1 || got[0].ID != "keep" {
		t.Errorf("Trades after delete = %+v, want only keep", got)
	}
}

func TestRepository_Replace(t *testing.T) {
	repo, _ := newTestRepository()
	repo.Add(Trade{
		ID: "old", Type: CoveredCall, Symbol: "AAPL",
		Strike: dec(150), Premium: dec(2.5), Quantity: 1,
		DateOpened: NewDate(2024, 1, 10), Expiration: NewDate(2024, 2, 16),
		Status: StatusOpen,
	})

	repo.Replace([]Trade{{
		ID: "new", Type: CashSecuredPut, Symbol: "NVDA",
		Strike: dec(100), Premium: dec(4), Quantity: 2,
		DateOpened: NewDate(2024, 6, 1), Expiration: NewDate(2024, 7, 19),
		Status: StatusOpen,
	}})

	got := repo.Trades()
	if len(got) != 1 || got[0].ID != "new" {
		t.Errorf("Trades after replace = %+v, want only new", got)
	}
}

// Insertion order is display order; reads preserve it.
func TestRepository_InsertionOrder(t *testing.T) {
	repo, _ := newTestRepository()
	for _, id := range []string{"c", "a", "b"} {
		repo.Add(Trade{
			ID: id, Type: CoveredCall, Symbol: "AAPL",
			Strike: dec(150), Premium: dec(1), Quantity: 1,
			DateOpened: NewDate(2024, 1, 10), Expiration: NewDate(2024, 2, 16),
			Status: StatusOpen,
		})
	}

	got := repo.Trades()
	for i, want := range []string{"c", "a", "b"} {
		if got[i].ID != want {
			t.Errorf("trades[%d].ID = %q, want %q", i, got[i].ID, want)
		}
	}
}

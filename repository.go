package premiumo

// Repository exposes trade CRUD on top of the Store. Every call is a fresh
// load, mutate, save cycle; nothing is cached across calls, so within one
// process a read always observes the preceding write. Two independent
// processes still race (last save wins): the payload is replaced whole and
// there is no optimistic lock. That is an accepted limitation of the
// single-device model, not something this layer papers over.
type Repository struct {
	store *Store
}

// NewRepository returns a Repository over the given store.
func NewRepository(store *Store) *Repository {
	return &Repository{store: store}
}

// Trades returns the stored trades in insertion order.
func (r *Repository) Trades() []Trade {
	return r.store.LoadPayload().Trades
}

// Add appends the trade to the collection. The caller supplies the unique
// id (see the id package). It reports whether the save was persisted.
func (r *Repository) Add(t Trade) bool {
	payload := r.store.LoadPayload()
	payload.Trades = append(payload.Trades, t)
	return r.store.SavePayload(payload)
}

// Update applies a shallow merge of the patch over the first trade with the
// given id. Ids are assumed unique; duplicates are undefined behavior. An
// unknown id changes nothing and skips the save entirely, so the backup key
// is not rotated for a no-op.
func (r *Repository) Update(id string, patch TradePatch) bool {
	payload := r.store.LoadPayload()
	for i, t := range payload.Trades {
		if t.ID == id {
			payload.Trades[i] = patch.Apply(t)
			return r.store.SavePayload(payload)
		}
	}
	return false
}

// Delete removes every trade with the given id. Filtering rather than a
// single splice keeps the collection sane if duplicate ids ever crept in.
func (r *Repository) Delete(id string) bool {
	payload := r.store.LoadPayload()
	kept := payload.Trades[:0]
	for _, t := range payload.Trades {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	payload.Trades = kept
	return r.store.SavePayload(payload)
}

// Replace swaps in a whole new trade collection, bypassing merge semantics.
// Used for bulk operations such as imports.
func (r *Repository) Replace(trades []Trade) bool {
	payload := r.store.LoadPayload()
	payload.Trades = trades
	return r.store.SavePayload(payload)
}

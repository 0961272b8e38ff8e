package store

import "sync"

// Collection names under which data is persisted. Each maps to a single
// JSON blob in the KV store.
const (
	CollectionProducts     = "products"
	CollectionCategories   = "categories"
	CollectionCampaigns    = "campaigns"
	CollectionOrders       = "orders"
	CollectionStockImports = "stock_imports"
	CollectionUsers        = "users"
	CollectionVouchers     = "vouchers"
	CollectionHeroSlides   = "hero_slides"
	CollectionSiteConfig   = "site_config"
)

// ChangeOp is the kind of mutation a Change describes.
type ChangeOp string

const (
	OpUpsert ChangeOp = "upsert"
	OpDelete ChangeOp = "delete"
)

// Change is a typed per-collection mutation notification, carrying the id of
// the affected record so that subscribers can invalidate selectively.
type Change struct {
	Collection string
	Op         ChangeOp
	ID         string
}

// Bus fans out change notifications to in-process subscribers. Delivery is
// best-effort: a subscriber whose buffer is full misses the event and is
// expected to re-fetch on its next read.
type Bus struct {
	mu   sync.RWMutex
	subs []chan Change
}

// NewBus creates an empty change bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe returns a channel receiving subsequent changes.
func (b *Bus) Subscribe() <-chan Change {
	ch := make(chan Change, 64)
	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()
	return ch
}

// Publish delivers a change to all subscribers without blocking.
func (b *Bus) Publish(c Change) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- c:
		default:
		}
	}
}

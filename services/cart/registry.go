package cart

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ashim-08/Nepali-Thali/lib/mylog"
)

const DefaultMaxCarts = 10000

// Registry is the single owner of all carts: one Store per session, hydrated on first use.
// Only the most recently used carts stay in memory, an evicted cart is hydrated again from its snapshot.
type Registry struct {
	sync.Mutex
	stores      *lru.Cache[string, *Store]
	snapshotter Snapshotter
	logger      mylog.Logger
}

func NewRegistry(snapshotter Snapshotter, maxCarts int, logger mylog.Logger) (*Registry, error) {
	if maxCarts <= 0 {
		maxCarts = DefaultMaxCarts
	}
	stores, err := lru.New[string, *Store](maxCarts)
	if err != nil {
		return nil, err
	}

	return &Registry{
		stores:      stores,
		snapshotter: snapshotter,
		logger:      logger,
	}, nil
}

// StoreFor returns the cart of the session, an empty sessionUID denotes the default cart
func (r *Registry) StoreFor(c context.Context, sessionUID string) *Store {
	key := SnapshotKeyFor(sessionUID)

	r.Lock()
	store, found := r.stores.Get(key)
	if !found {
		store = NewStore(c, key, r.snapshotter, r.logger)
		r.stores.Add(key, store)
	}
	r.Unlock()

	if found {
		// no-op unless an earlier load failed
		store.Refresh(c)
	}
	return store
}

func (r *Registry) Size() int {
	return r.stores.Len()
}

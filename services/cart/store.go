package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/ashim-08/Nepali-Thali/lib/myerrors"
	"github.com/ashim-08/Nepali-Thali/lib/mylog"
)

// Store owns the state of one cart. Every mutation runs Reduce and writes the resulting
// snapshot while holding the lock, so readers never observe a state that was not persisted.
//
// As long as the snapshot could not be read, nothing is written: mutations are kept in memory
// and replayed on top of the stored cart once it loads, so a stored cart is never overwritten
// by a state that did not start from it.
type Store struct {
	sync.Mutex
	key         string
	state       CartState
	loaded      bool
	pending     []Operation
	snapshotter Snapshotter
	logger      mylog.Logger
}

// NewStore hydrates from the snapshot under key. A missing, unreadable or inconsistent
// snapshot results in an empty cart.
func NewStore(c context.Context, key string, snapshotter Snapshotter, logger mylog.Logger) *Store {
	s := &Store{
		key:         key,
		state:       EmptyState(),
		snapshotter: snapshotter,
		logger:      logger,
	}
	s.ensureLoaded(c)
	return s
}

// load returns the stored cart. Only a failing read is an error: an absent or malformed
// snapshot means there is no prior cart.
func (s *Store) load(c context.Context) (CartState, error) {
	// a caller that gives up must not leave the cart unloaded
	c = context.WithoutCancel(c)

	data, found, err := s.snapshotter.Load(c, s.key)
	if err != nil {
		s.logger.Log(c, s.key, mylog.SeverityWarn, "Error loading cart snapshot %s, starting empty: %s", s.key, err)
		return CartState{}, err
	}
	if !found {
		s.logger.Log(c, s.key, mylog.SeverityDebug, "No cart snapshot %s, starting empty", s.key)
		return EmptyState(), nil
	}

	state, err := DecodeSnapshot(data)
	if err != nil {
		s.logger.Log(c, s.key, mylog.SeverityWarn, "Ignoring malformed cart snapshot %s: %s", s.key, err)
		return EmptyState(), nil
	}

	s.logger.Log(c, s.key, mylog.SeverityDebug, "Hydrated cart %s with %d items", s.key, state.TotalItems)
	return state, nil
}

// ensureLoaded retries hydration while the snapshot has not been read. Must be called with the lock held.
func (s *Store) ensureLoaded(c context.Context) bool {
	if s.loaded {
		return true
	}

	state, err := s.load(c)
	if err != nil {
		return false
	}

	for _, op := range s.pending {
		state = Reduce(state, op)
	}
	s.state = state
	s.loaded = true

	if len(s.pending) > 0 {
		s.logger.Log(c, s.key, mylog.SeverityInfo, "Replayed %d operations on cart %s", len(s.pending), s.key)
		s.persist(c, s.pending[len(s.pending)-1])
		s.pending = nil
	}
	return true
}

// Refresh retries loading the snapshot when an earlier attempt failed
func (s *Store) Refresh(c context.Context) bool {
	s.Lock()
	defer s.Unlock()

	return s.ensureLoaded(c)
}

func (s *Store) Key() string {
	return s.key
}

func (s *Store) Loaded() bool {
	s.Lock()
	defer s.Unlock()

	return s.loaded
}

func (s *Store) State() CartState {
	s.Lock()
	defer s.Unlock()

	return s.state.Copy()
}

func (s *Store) Contains(id string) bool {
	s.Lock()
	defer s.Unlock()

	return s.state.Contains(id)
}

// Dispatch applies op and returns the resulting state. The boolean is false when op refers
// to an item that is not in the cart; the cart is then left untouched.
func (s *Store) Dispatch(c context.Context, op Operation) (CartState, bool) {
	s.Lock()
	defer s.Unlock()

	s.ensureLoaded(c)

	if id, ok := targetOf(op); ok && !s.state.Contains(id) {
		return s.state.Copy(), false
	}

	return s.apply(c, op), true
}

func (s *Store) AddItem(c context.Context, product Product) CartState {
	state, _ := s.Dispatch(c, AddItem{Product: product})
	return state
}

func (s *Store) RemoveItem(c context.Context, id string) (CartState, bool) {
	return s.Dispatch(c, RemoveItem{ID: id})
}

func (s *Store) SetQuantity(c context.Context, id string, quantity int) (CartState, bool) {
	return s.Dispatch(c, SetQuantity{ID: id, Quantity: quantity})
}

func (s *Store) Clear(c context.Context) CartState {
	state, _ := s.Dispatch(c, Clear{})
	return state
}

// Checkout hands the current state to f and empties the cart only when f succeeds.
// No other mutation can interleave between the two. A cart whose snapshot cannot be
// read is not checked out.
func (s *Store) Checkout(c context.Context, f func(state CartState) error) error {
	s.Lock()
	defer s.Unlock()

	if !s.ensureLoaded(c) {
		return myerrors.NewUnavailableError(fmt.Errorf("cart %s could not be loaded", s.key))
	}

	err := f(s.state.Copy())
	if err != nil {
		return err
	}

	s.apply(c, Clear{})
	return nil
}

func (s *Store) apply(c context.Context, op Operation) CartState {
	s.state = Reduce(s.state, op)
	if !s.loaded {
		s.pending = append(s.pending, op)
		s.logger.Log(c, s.key, mylog.SeverityWarn, "Cart snapshot %s not loaded, keeping %s in memory", s.key, op)
		return s.state.Copy()
	}
	s.persist(c, op)
	return s.state.Copy()
}

// persist never fails the mutation: the in-memory state stays leading when durability is lost
func (s *Store) persist(c context.Context, op Operation) {
	c = context.WithoutCancel(c)

	data, err := EncodeSnapshot(s.state)
	if err != nil {
		s.logger.Log(c, s.key, mylog.SeverityError, "Error encoding cart snapshot %s after %s: %s", s.key, op, err)
		return
	}

	err = s.snapshotter.Save(c, s.key, data)
	if err != nil {
		s.logger.Log(c, s.key, mylog.SeverityError, "Error saving cart snapshot %s after %s: %s", s.key, op, err)
		return
	}
}

package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ashim-08/Nepali-Thali/lib/mystore"
)

const (
	snapshotKey = "cartState"
)

// SnapshotKeyFor returns the persistence key of the cart of a session
func SnapshotKeyFor(sessionUID string) string {
	if sessionUID == "" {
		return snapshotKey
	}
	return snapshotKey + ":" + sessionUID
}

//go:generate mockgen -source=snapshot.go -package cart -destination snapshot_mock.go Snapshotter
type Snapshotter interface {
	Load(c context.Context, key string) ([]byte, bool, error)
	Save(c context.Context, key string, snapshot []byte) error
}

// Snapshot is the persisted form of a cart: the serialized CartState under one key
type Snapshot struct {
	Payload string `datastore:",noindex"`
}

type storeSnapshotter struct {
	store mystore.Store[Snapshot]
}

func NewSnapshotter(store mystore.Store[Snapshot]) Snapshotter {
	return &storeSnapshotter{
		store: store,
	}
}

func (s *storeSnapshotter) Load(c context.Context, key string) ([]byte, bool, error) {
	snapshot, found, err := s.store.Get(c, key)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return []byte(snapshot.Payload), true, nil
}

func (s *storeSnapshotter) Save(c context.Context, key string, snapshot []byte) error {
	return s.store.Put(c, key, Snapshot{Payload: string(snapshot)})
}

func EncodeSnapshot(state CartState) ([]byte, error) {
	return json.Marshal(state)
}

// DecodeSnapshot parses a snapshot and rejects it when it does not describe a consistent cart
func DecodeSnapshot(data []byte) (CartState, error) {
	state := CartState{}
	err := json.Unmarshal(data, &state)
	if err != nil {
		return CartState{}, fmt.Errorf("error parsing snapshot: %s", err)
	}

	err = state.Validate()
	if err != nil {
		return CartState{}, fmt.Errorf("inconsistent snapshot: %s", err)
	}

	return state.Copy(), nil
}

package mystore

import (
	"context"
	"errors"

	"cloud.google.com/go/datastore"
	pkgerrors "github.com/pkg/errors"
)

type gcloudStore[T any] struct {
	client *datastore.Client
	kind   string
}

func newGcloudStore[T any](c context.Context, projectID string) (*gcloudStore[T], func(), error) {
	client, err := datastore.NewClient(c, projectID)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(err, "error creating datastore-client")
	}

	return &gcloudStore[T]{
			client: client,
			kind:   kindOf[T](),
		}, func() {
			client.Close()
		}, nil
}

func (s *gcloudStore[T]) Put(c context.Context, uid string, value T) error {
	_, err := s.client.Put(c, datastore.NameKey(s.kind, uid, nil), &value)
	if err != nil {
		return pkgerrors.Wrapf(err, "error storing entity %s with uid %s", s.kind, uid)
	}

	return nil
}

func (s *gcloudStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	value := new(T)

	err := s.client.Get(c, datastore.NameKey(s.kind, uid, nil), value)
	if err != nil {
		if errors.Is(err, datastore.ErrNoSuchEntity) {
			return *value, false, nil
		}
		return *value, false, pkgerrors.Wrapf(err, "error fetching entity %s with uid %s", s.kind, uid)
	}

	return *value, true, nil
}

package mystore

import (
	"context"
	"encoding/json"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type redisStore[T any] struct {
	client *redis.Client
	kind   string
}

func newRedisStore[T any](c context.Context, addr string, password string, db int) (*redisStore[T], func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	err := client.Ping(c).Err()
	if err != nil {
		client.Close()
		return nil, nil, pkgerrors.Wrapf(err, "error connecting to redis at %s", addr)
	}

	return NewRedisStore[T](client), func() {
		client.Close()
	}, nil
}

// NewRedisStore stores every value as json under "<kind>:<uid>"
func NewRedisStore[T any](client *redis.Client) *redisStore[T] {
	return &redisStore[T]{
		client: client,
		kind:   kindOf[T](),
	}
}

func (s *redisStore[T]) key(uid string) string {
	return s.kind + ":" + uid
}

func (s *redisStore[T]) Put(c context.Context, uid string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return pkgerrors.Wrapf(err, "error marshalling entity %s with uid %s", s.kind, uid)
	}

	err = s.client.Set(c, s.key(uid), data, 0).Err()
	if err != nil {
		return pkgerrors.Wrapf(err, "error storing entity %s with uid %s", s.kind, uid)
	}

	return nil
}

func (s *redisStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	var value T

	data, err := s.client.Get(c, s.key(uid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return value, false, nil
		}
		return value, false, pkgerrors.Wrapf(err, "error fetching entity %s with uid %s", s.kind, uid)
	}

	err = json.Unmarshal(data, &value)
	if err != nil {
		return value, false, pkgerrors.Wrapf(err, "error unmarshalling entity %s with uid %s", s.kind, uid)
	}

	return value, true, nil
}

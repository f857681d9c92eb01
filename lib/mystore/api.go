package mystore

import (
	"context"
	"fmt"
	"strings"

	"github.com/ashim-08/Nepali-Thali/lib/myconfig"
)

type Store[T any] interface {
	Put(c context.Context, uid string, value T) error
	Get(c context.Context, uid string) (T, bool, error)
}

func New[T any](c context.Context, cfg myconfig.Config) (Store[T], func(), error) {
	switch cfg.StoreBackend {
	case myconfig.StoreBackendDatastore:
		return newGcloudStore[T](c, cfg.GoogleCloudProject)
	case myconfig.StoreBackendRedis:
		return newRedisStore[T](c, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return NewInMemoryStore[T](c)
	}
}

// kindOf derives the entity kind from the unqualified type name
func kindOf[T any]() string {
	val := new(T)
	kind := fmt.Sprintf("%T", *val)
	if strings.Contains(kind, ".") {
		kind = strings.Split(kind, ".")[1]
	}
	return kind
}

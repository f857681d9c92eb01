package myconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	StoreBackendMemory    = "memory"
	StoreBackendDatastore = "datastore"
	StoreBackendRedis     = "redis"

	PubSubBackendFake   = "fake"
	PubSubBackendGcloud = "gcloud"
	PubSubBackendKafka  = "kafka"
)

type Config struct {
	Port               string
	GoogleCloudProject string
	StoreBackend       string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	CatalogURL         string
	PubSubBackend      string
	KafkaBrokers       []string
	OtelEndpoint       string
	DeliveryFreeAbove  int64
	DeliveryFee        int64
	MaxCarts           int
}

// Load reads an optional config.yaml from the working directory and lets environment variables override it
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("google_cloud_project", "")
	v.SetDefault("store_backend", "")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("catalog_url", "https://dummyjson.com/recipes")
	v.SetDefault("pubsub_backend", "")
	v.SetDefault("kafka_brokers", "")
	v.SetDefault("otel_exporter_otlp_endpoint", "")
	v.SetDefault("delivery_free_above", 300)
	v.SetDefault("delivery_fee", 30)
	v.SetDefault("max_carts", 10000)

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %s", err)
		}
	}

	cfg := Config{
		Port:               v.GetString("port"),
		GoogleCloudProject: v.GetString("google_cloud_project"),
		StoreBackend:       v.GetString("store_backend"),
		RedisAddr:          v.GetString("redis_addr"),
		RedisPassword:      v.GetString("redis_password"),
		RedisDB:            v.GetInt("redis_db"),
		CatalogURL:         v.GetString("catalog_url"),
		PubSubBackend:      v.GetString("pubsub_backend"),
		KafkaBrokers:       splitList(v.GetString("kafka_brokers")),
		OtelEndpoint:       v.GetString("otel_exporter_otlp_endpoint"),
		DeliveryFreeAbove:  v.GetInt64("delivery_free_above"),
		DeliveryFee:        v.GetInt64("delivery_fee"),
		MaxCarts:           v.GetInt("max_carts"),
	}

	// Running on gcloud implies the gcloud flavour of the infrastructure
	if cfg.StoreBackend == "" {
		cfg.StoreBackend = StoreBackendMemory
		if cfg.GoogleCloudProject != "" {
			cfg.StoreBackend = StoreBackendDatastore
		}
	}
	if cfg.PubSubBackend == "" {
		cfg.PubSubBackend = PubSubBackendFake
		if cfg.GoogleCloudProject != "" {
			cfg.PubSubBackend = PubSubBackendGcloud
		}
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.StoreBackend {
	case StoreBackendMemory, StoreBackendRedis:
	case StoreBackendDatastore:
		if c.GoogleCloudProject == "" {
			return fmt.Errorf("store backend %s requires GOOGLE_CLOUD_PROJECT", c.StoreBackend)
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}

	switch c.PubSubBackend {
	case PubSubBackendFake:
	case PubSubBackendGcloud:
		if c.GoogleCloudProject == "" {
			return fmt.Errorf("pubsub backend %s requires GOOGLE_CLOUD_PROJECT", c.PubSubBackend)
		}
	case PubSubBackendKafka:
		if len(c.KafkaBrokers) == 0 {
			return fmt.Errorf("pubsub backend %s requires KAFKA_BROKERS", c.PubSubBackend)
		}
	default:
		return fmt.Errorf("unknown pubsub backend %q", c.PubSubBackend)
	}

	return nil
}

func splitList(value string) []string {
	result := []string{}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

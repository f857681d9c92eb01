package mypubsub

import (
	"context"

	"github.com/ashim-08/Nepali-Thali/lib/myconfig"
)

//go:generate mockgen -source=pubsub_api.go -package mypubsub -destination pubsub_mock.go PubSub
type PubSub interface {
	CreateTopic(c context.Context, topic string) error
	Publish(c context.Context, topic string, data string) error
}

func New(c context.Context, cfg myconfig.Config) (PubSub, func(), error) {
	switch cfg.PubSubBackend {
	case myconfig.PubSubBackendGcloud:
		return newGcloudPubSub(c, cfg.GoogleCloudProject)
	case myconfig.PubSubBackendKafka:
		return newKafkaPubSub(c, cfg.KafkaBrokers)
	default:
		return newFakePubSub(c)
	}
}

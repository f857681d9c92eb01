package mypublisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ashim-08/Nepali-Thali/lib/myevents"
	"github.com/ashim-08/Nepali-Thali/lib/mylog"
	"github.com/ashim-08/Nepali-Thali/lib/mypubsub"
	"github.com/ashim-08/Nepali-Thali/lib/mytime"
)

type publisher struct {
	pubsub    mypubsub.PubSub
	enveloper enveloper
	logger    mylog.Logger
}

// New publishes enveloped events directly on the pubsub backend
func New(pubsub mypubsub.PubSub, nower mytime.Nower, logger mylog.Logger) *publisher {
	return &publisher{
		pubsub:    pubsub,
		enveloper: newEnveloper(nower),
		logger:    logger,
	}
}

func (p *publisher) CreateTopic(c context.Context, topic string) error {
	return p.pubsub.CreateTopic(c, topic)
}

func (p *publisher) Publish(c context.Context, topic string, event myevents.Event) error {
	envelope, err := p.enveloper.do(topic, event)
	if err != nil {
		return fmt.Errorf("error creating envelope: %s", err)
	}

	jsonBytes, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("error serializing envelope: %s", err)
	}

	err = p.pubsub.Publish(c, topic, string(jsonBytes))
	if err != nil {
		return fmt.Errorf("error publishing event %s: %s", envelope, err)
	}

	p.logger.Log(c, envelope.AggregateUID, mylog.SeverityInfo, "Published event %s", envelope)

	return nil
}

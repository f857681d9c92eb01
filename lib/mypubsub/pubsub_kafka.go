package mypubsub

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type kafkaPubSub struct {
	writer *kafka.Writer
}

func newKafkaPubSub(c context.Context, brokers []string) (PubSub, func(), error) {
	if len(brokers) == 0 {
		return nil, func() {}, fmt.Errorf("no kafka brokers configured")
	}

	// Topic is taken from each message
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Printf("kafka producer error: "+msg, args...)
		}),
	}

	return &kafkaPubSub{
			writer: writer,
		}, func() {
			writer.Close()
		}, nil
}

func (ps *kafkaPubSub) CreateTopic(c context.Context, topicName string) error {
	// Topics are auto-created on first write
	return nil
}

func (ps *kafkaPubSub) Publish(c context.Context, topicName string, data string) error {
	err := ps.writer.WriteMessages(c, kafka.Message{
		Topic: topicName,
		Value: []byte(data),
	})
	if err != nil {
		return fmt.Errorf("error publishing event on topic %s: %s", topicName, err)
	}

	return nil
}

package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

type ProducerConfig struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
	WriteTimeout time.Duration
}

func (c *ProducerConfig) newWriter() *kafka.Writer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(c.Brokers...),
		Topic:        c.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}

	if c.BatchTimeout > 0 {
		w.BatchTimeout = c.BatchTimeout
	}
	if c.WriteTimeout > 0 {
		w.WriteTimeout = c.WriteTimeout
	}

	return w
}

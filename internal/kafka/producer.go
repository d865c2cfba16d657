package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Gunvolt24/marketplace_vendor/internal/domain"
	"github.com/Gunvolt24/marketplace_vendor/internal/ports"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Producer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.EventPublisher = (*Producer)(nil)

// writer — минимальный контракт над приёмником (kafka.Writer),
// чтобы легко подменять его моками в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer — обёртка над kafka.Writer; публикует события о созданных
// сущностях. Ключ сообщения — entity_id, чтобы события одной сущности
// попадали в одну партицию и сохраняли порядок.
type Producer struct {
	writer    writer
	topic     string
	closeOnce sync.Once
}

// NewProducer — конструктор. writerConfig() настроен на подтверждение
// записи всеми репликами (RequireAll).
func NewProducer(cfg *ProducerConfig) *Producer {
	return &Producer{
		writer: cfg.newWriter(),
		topic:  cfg.Topic,
	}
}

// Publish — сериализует событие в JSON и пишет в топик.
func (p *Producer) Publish(ctx context.Context, event domain.VendorEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.Name, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.EntityID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event.Name)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write event %s: %w", event.Name, err)
	}
	return nil
}

// Close - закрывает writer. Вызывается при остановке приложения.
func (p *Producer) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}

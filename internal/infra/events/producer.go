package events

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события бронирований
// Публикация best-effort: ошибка брокера логируется и не роняет запрос
type Publisher interface {
	Publish(eventType EventType, bookingID, propertyID int64, payload map[string]interface{})
	Close() error
}

// KafkaPublisher публикует события в Kafka через асинхронный producer
// События партиционируются по ID бронирования, чтобы события одного
// бронирования читались в порядке публикации
type KafkaPublisher struct {
	producer sarama.AsyncProducer
	topic    string
	log      Logger
}

// NewKafkaPublisher создает publisher поверх асинхронного sarama producer
func NewKafkaPublisher(brokers []string, topic string, log Logger) (*KafkaPublisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Compression = sarama.CompressionSnappy
	cfg.Producer.Flush.Frequency = 500 * time.Millisecond
	cfg.Producer.Return.Errors = true

	producer, err := sarama.NewAsyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("events: failed to create kafka producer: %w", err)
	}

	p := &KafkaPublisher{
		producer: producer,
		topic:    topic,
		log:      log,
	}

	// Дренируем ошибки доставки, иначе канал переполнится
	go func() {
		for err := range producer.Errors() {
			p.log.Error("events: failed to deliver event: %v", err.Err)
		}
	}()

	return p, nil
}

// Publish отправляет событие в Kafka
func (p *KafkaPublisher) Publish(eventType EventType, bookingID, propertyID int64, payload map[string]interface{}) {
	event := BookingEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		BookingID:  bookingID,
		PropertyID: propertyID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error("events: failed to marshal event %s for booking=%d: %v", eventType, bookingID, err)
		return
	}

	p.producer.Input() <- &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(bookingID, 10)),
		Value: sarama.ByteEncoder(value),
	}
}

// Close останавливает producer, дожидаясь отправки буферизованных событий
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NopPublisher заглушка, когда Kafka выключена конфигурацией
type NopPublisher struct{}

// Publish ничего не делает
func (NopPublisher) Publish(EventType, int64, int64, map[string]interface{}) {}

// Close ничего не делает
func (NopPublisher) Close() error { return nil }

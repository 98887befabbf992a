package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"delivery-pricing/internal/config"
	"delivery-pricing/internal/logger"
	"delivery-pricing/internal/models"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// Producer публикует события расчёта цены в Kafka
type Producer struct {
	producer sarama.SyncProducer
	log      *logger.Logger
	topics   *config.Topics
}

// NewProducer создает синхронный продюсер Kafka
func NewProducer(cfg *config.KafkaConfig, log *logger.Logger) (*Producer, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.RequiredAcks = sarama.WaitForLocal
	saramaCfg.Producer.Retry.Max = 3
	saramaCfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.WithField("brokers", cfg.Brokers).Info("Kafka producer connected")

	return &Producer{
		producer: producer,
		log:      log,
		topics:   &cfg.Topics,
	}, nil
}

// Close закрывает продюсер
func (p *Producer) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}

// PublishQuoteComputed публикует событие успешного расчёта котировки
func (p *Producer) PublishQuoteComputed(venueSlug string, breakdown *models.PriceBreakdown) error {
	event := models.Event{
		ID:        uuid.New(),
		Type:      models.EventTypeQuoteComputed,
		Timestamp: time.Now().UTC(),
		Data: models.QuoteComputedData{
			VenueSlug:  venueSlug,
			CartValue:  breakdown.CartValue,
			Distance:   breakdown.Delivery.Distance,
			Fee:        breakdown.Delivery.Fee,
			Surcharge:  breakdown.SmallOrderSurcharge,
			TotalPrice: breakdown.TotalPrice,
		},
	}
	return p.publishEvent(p.topics.Quotes, event)
}

// PublishQuoteRejected публикует событие отказа по расстоянию
func (p *Producer) PublishQuoteRejected(venueSlug string, distance int, reason string) error {
	event := models.Event{
		ID:        uuid.New(),
		Type:      models.EventTypeQuoteRejected,
		Timestamp: time.Now().UTC(),
		Data: models.QuoteRejectedData{
			VenueSlug: venueSlug,
			Distance:  distance,
			Reason:    reason,
		},
	}
	return p.publishEvent(p.topics.Quotes, event)
}

// publishEvent сериализует событие и отправляет в топик
func (p *Producer) publishEvent(topic string, event models.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(event.ID.String()),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message to topic %s: %w", topic, err)
	}

	p.log.WithFields(map[string]interface{}{
		"topic":     topic,
		"partition": partition,
		"offset":    offset,
		"type":      event.Type,
	}).Debug("Event published")

	return nil
}

package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"medresFront/internal/modules/realtime/domain"
)

// KafkaConsumer lee un tópico de eventos del backend medres.
type KafkaConsumer struct {
	reader *kafka.Reader
}

func NewKafkaConsumer(brokers []string, groupID, topic string) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   topic,
		}),
	}
}

func (c *KafkaConsumer) Consume(ctx context.Context, handler func(*domain.Message) error) error {
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Warn("kafka read error", slog.Any("error", err))
			continue
		}
		msg := decodeMessage(m)
		slog.Info("kafka message consumed",
			slog.String("topic", m.Topic),
			slog.Int("partition", m.Partition),
			slog.Int64("offset", m.Offset),
			slog.String("action", msg.Action),
			slog.String("resourceId", msg.ResourceID),
		)
		if err := handler(msg); err != nil {
			slog.Warn("kafka handler error", slog.Any("error", err))
		}
	}
}

type rawEvent struct {
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId"`
	Metadata   map[string]string `json:"metadata"`
	Data       any               `json:"data"`
}

// decodeMessage tolera productores que publican el evento estructurado o el
// registro crudo; el tópico del registro manda para el despacho.
func decodeMessage(m kafka.Message) *domain.Message {
	msg := &domain.Message{Topic: m.Topic, Timestamp: time.Now().UTC()}

	var event rawEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		msg.Entity, msg.Action = inferEntityAction(m.Topic)
		msg.Data = string(m.Value)
		return msg
	}

	msg.Entity = firstNonEmpty(event.Entity, "reservas")
	msg.Action = firstNonEmpty(event.Action, inferAction(m.Topic))
	msg.ResourceID = event.ResourceID
	msg.Metadata = event.Metadata
	if event.Data != nil {
		msg.Data = event.Data
	} else {
		var raw any
		if err := json.Unmarshal(m.Value, &raw); err == nil {
			msg.Data = raw
		}
	}
	return msg
}

func inferEntityAction(topic string) (string, string) {
	parts := strings.Split(topic, ".")
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[len(parts)-2]), strings.TrimSpace(parts[len(parts)-1])
	}
	return strings.TrimSpace(topic), "unknown"
}

func inferAction(topic string) string {
	_, action := inferEntityAction(topic)
	return action
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// StartConsumers lanza un consumidor por tópico y despacha al registry. Sin
// brokers configurados no arranca nada.
func StartConsumers(ctx context.Context, dispatch func(context.Context, *domain.Message) error, brokers []string, groupID string, topics []string) {
	if len(brokers) == 0 {
		slog.Warn("kafka sin brokers configurados; consumo deshabilitado")
		return
	}
	for _, topic := range topics {
		go func(tp string) {
			consumer := NewKafkaConsumer(brokers, groupID, tp)
			_ = consumer.Consume(ctx, func(msg *domain.Message) error {
				return dispatch(ctx, msg)
			})
		}(topic)
	}
}

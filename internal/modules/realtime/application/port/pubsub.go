package port

import (
	"context"

	"medresFront/internal/modules/realtime/domain"
)

// Broadcaster envia mensajes a los clientes WebSocket suscritos.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg *domain.Message)
}

// TopicHandler procesa los eventos de un tópico Kafka.
type TopicHandler interface {
	Topic() string
	Handle(ctx context.Context, msg *domain.Message) error
}

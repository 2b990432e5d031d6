package handler

import (
	"context"
	"testing"

	"medresFront/internal/modules/realtime/application/usecase"
	"medresFront/internal/modules/realtime/domain"
)

type captureBroadcaster struct {
	messages []*domain.Message
}

func (c *captureBroadcaster) Broadcast(ctx context.Context, msg *domain.Message) {
	c.messages = append(c.messages, msg)
}

func TestHandleProjectsReservationToCalendarEvent(t *testing.T) {
	capture := &captureBroadcaster{}
	h := NewReservationStreamHandler("reservas.events", []string{"created", "updated", "deleted"}, usecase.NewBroadcastUseCase(capture))

	err := h.Handle(context.Background(), &domain.Message{
		Topic:  "reservas.events",
		Action: "created",
		Data: map[string]any{
			"nroReserva":   41,
			"fechaIngreso": "2025-07-01",
			"fechaSalida":  "2025-07-04",
			"estado":       "Pendiente",
			"habitacione":  map[string]any{"id": 4, "nombre": "Suite Mar"},
		},
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(capture.messages) != 1 {
		t.Fatalf("broadcasts = %d, want 1", len(capture.messages))
	}
	msg := capture.messages[0]
	if msg.Topic != domain.CalendarTopic || msg.Action != "created" || msg.ResourceID != "41" {
		t.Fatalf("msg = %+v", msg)
	}
	payload, ok := msg.Data.(map[string]any)
	if !ok || payload["evento"] == nil || payload["reserva"] == nil {
		t.Fatalf("data = %+v", msg.Data)
	}
}

func TestHandleIgnoresDisallowedActions(t *testing.T) {
	capture := &captureBroadcaster{}
	h := NewReservationStreamHandler("reservas.events", []string{"created"}, usecase.NewBroadcastUseCase(capture))

	if err := h.Handle(context.Background(), &domain.Message{Action: "snapshot"}); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(capture.messages) != 0 {
		t.Fatalf("broadcasts = %d, want 0", len(capture.messages))
	}
}

func TestHandleDeletedWithoutBodyStillNotifies(t *testing.T) {
	capture := &captureBroadcaster{}
	h := NewReservationStreamHandler("reservas.events", nil, usecase.NewBroadcastUseCase(capture))

	if err := h.Handle(context.Background(), &domain.Message{Action: domain.ActionDeleted, ResourceID: "9"}); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(capture.messages) != 1 || capture.messages[0].ResourceID != "9" {
		t.Fatalf("broadcasts = %+v", capture.messages)
	}
}

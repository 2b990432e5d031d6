package handler

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"medresFront/internal/modules/realtime/application/usecase"
	"medresFront/internal/modules/realtime/domain"
	calendar "medresFront/internal/modules/reservations/application/usecase"
	reservations "medresFront/internal/modules/reservations/domain"
)

// ReservationStreamHandler reenvía los eventos de reservas del backend a los
// clientes del calendario, proyectando la reserva a su evento calendarizable.
type ReservationStreamHandler struct {
	kafkaTopic     string
	allowedActions map[string]struct{}
	broadcastUC    *usecase.BroadcastUseCase
	now            func() time.Time
}

func NewReservationStreamHandler(kafkaTopic string, allowedActions []string, broadcastUC *usecase.BroadcastUseCase) *ReservationStreamHandler {
	actionSet := make(map[string]struct{}, len(allowedActions))
	for _, a := range allowedActions {
		if v := strings.TrimSpace(strings.ToLower(a)); v != "" {
			actionSet[v] = struct{}{}
		}
	}
	return &ReservationStreamHandler{
		kafkaTopic:     kafkaTopic,
		allowedActions: actionSet,
		broadcastUC:    broadcastUC,
		now:            time.Now,
	}
}

func (h *ReservationStreamHandler) Topic() string { return h.kafkaTopic }

func (h *ReservationStreamHandler) Handle(ctx context.Context, msg *domain.Message) error {
	if len(h.allowedActions) > 0 {
		if _, ok := h.allowedActions[strings.ToLower(msg.Action)]; !ok {
			return nil
		}
	}

	payload := map[string]any{}
	resourceID := msg.ResourceID
	if reservation, ok := reservations.BuildReservationDetail(msg.Data); ok {
		events := calendar.ToEvents([]reservations.Reservation{*reservation})
		payload["reserva"] = reservation
		payload["evento"] = events[0]
		if resourceID == "" {
			resourceID = strconv.Itoa(reservation.Number)
		}
	} else if msg.Action != domain.ActionDeleted {
		// Sin cuerpo proyectable solo avisamos en borrados, donde el id alcanza.
		slog.Warn("evento de reserva sin detalle", slog.String("action", msg.Action), slog.String("resourceId", msg.ResourceID))
		return nil
	}

	out := domain.BuildCalendarMessage(msg.Action, resourceID, payload, h.now())
	h.broadcastUC.Execute(ctx, out)
	return nil
}

package usecase

import (
	"fmt"
	"time"

	"medresFront/internal/modules/reservations/domain"
)

// eventPalette colors the calendar entries by cyclic index. The color is
// cosmetic and only stable within one fetch; a re-fetch may reorder the
// collection and reassign colors.
var eventPalette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8",
	"#F06292", "#AED581", "#7986CB", "#4DB6AC", "#FFD54F",
}

// CalendarEvent is a reservation projected onto the admin calendar.
type CalendarEvent struct {
	ID          int                `json:"id"`
	Title       string             `json:"title"`
	Start       time.Time          `json:"start"`
	End         time.Time          `json:"end"`
	Color       string             `json:"color"`
	Reservation domain.Reservation `json:"reserva"`
}

// ToEvents maps each reservation to a calendar event spanning its stay.
func ToEvents(reservations []domain.Reservation) []CalendarEvent {
	events := make([]CalendarEvent, 0, len(reservations))
	for i, r := range reservations {
		events = append(events, CalendarEvent{
			ID:          r.Number,
			Title:       eventTitle(r),
			Start:       domain.DayOf(r.CheckIn),
			End:         domain.DayOf(r.CheckOut),
			Color:       eventPalette[i%len(eventPalette)],
			Reservation: r,
		})
	}
	return events
}

func eventTitle(r domain.Reservation) string {
	roomID := r.RoomID
	roomName := ""
	if r.Room != nil {
		roomID = r.Room.ID
		roomName = r.Room.Name
	}
	return fmt.Sprintf("Hab %d - %s", roomID, roomName)
}

// EventsOnDay keeps the events whose stay touches the given calendar day,
// end date included. This is deliberately broader than the report's
// check-in-only bucketing: it answers which stays overlap the day, not
// which stays began on it.
func EventsOnDay(events []CalendarEvent, day time.Time) []CalendarEvent {
	target := domain.DayOf(day)
	out := make([]CalendarEvent, 0)
	for _, ev := range events {
		if target.Equal(ev.Start) || (!target.Before(ev.Start) && !target.After(ev.End)) {
			out = append(out, ev)
		}
	}
	return out
}

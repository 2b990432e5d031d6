package usecase

import (
	"testing"

	"medresFront/internal/modules/reservations/domain"
)

func TestToEventsCyclesPaletteAndBuildsTitles(t *testing.T) {
	rs := make([]domain.Reservation, 11)
	for i := range rs {
		rs[i] = domain.Reservation{
			Number:   i + 1,
			CheckIn:  day("2025-07-01"),
			CheckOut: day("2025-07-04"),
			Room:     &domain.ReservedRoom{ID: 4, Name: "Suite Mar"},
		}
	}
	events := ToEvents(rs)
	if len(events) != 11 {
		t.Fatalf("len = %d, want 11", len(events))
	}
	if events[0].Color != "#FF6B6B" {
		t.Fatalf("color 0 = %q", events[0].Color)
	}
	if events[10].Color != events[0].Color {
		t.Fatalf("el color 10 deberia reciclar la paleta: %q vs %q", events[10].Color, events[0].Color)
	}
	if events[0].Title != "Hab 4 - Suite Mar" {
		t.Fatalf("title = %q", events[0].Title)
	}
}

func TestToEventsTitleWithoutRoomDetail(t *testing.T) {
	events := ToEvents([]domain.Reservation{{Number: 2, RoomID: 9, CheckIn: day("2025-07-01"), CheckOut: day("2025-07-02")}})
	if events[0].Title != "Hab 9 - " {
		t.Fatalf("title = %q", events[0].Title)
	}
}

func TestEventsOnDayIncludesWholeStay(t *testing.T) {
	events := ToEvents([]domain.Reservation{{
		Number:   1,
		CheckIn:  day("2025-07-01"),
		CheckOut: day("2025-07-04"),
	}})

	for _, d := range []string{"2025-07-01", "2025-07-02", "2025-07-03", "2025-07-04"} {
		if got := EventsOnDay(events, day(d)); len(got) != 1 {
			t.Fatalf("EventsOnDay(%s) = %d eventos, want 1", d, len(got))
		}
	}
	for _, d := range []string{"2025-06-30", "2025-07-05"} {
		if got := EventsOnDay(events, day(d)); len(got) != 0 {
			t.Fatalf("EventsOnDay(%s) = %d eventos, want 0", d, len(got))
		}
	}
}

package domain

import (
	"errors"
	"testing"
)

func TestDraftStepsProduceNewSnapshots(t *testing.T) {
	base := NewDraft()
	withRoom := base.WithRoomType(2)
	if base.RoomTypeID != 0 {
		t.Fatal("base draft must stay untouched")
	}
	if withRoom.RoomTypeID != 2 {
		t.Fatalf("unexpected room type: %d", withRoom.RoomTypeID)
	}
	if withRoom.Adults != 1 {
		t.Fatalf("expected default adult count preserved, got %d", withRoom.Adults)
	}
}

func TestValidateDates(t *testing.T) {
	today := day("2025-06-01")
	draft := NewDraft().WithRoomType(2)

	if err := draft.ValidateDates(today); !errors.Is(err, ErrMissingDates) {
		t.Fatalf("expected missing dates, got %v", err)
	}

	past := draft.WithDates(day("2025-05-30"), day("2025-06-03"))
	if err := past.ValidateDates(today); !errors.Is(err, ErrDateInPast) {
		t.Fatalf("expected past date rejection, got %v", err)
	}

	inverted := draft.WithDates(day("2025-06-13"), day("2025-06-10"))
	if err := inverted.ValidateDates(today); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected invalid range, got %v", err)
	}

	valid := draft.WithDates(day("2025-06-10"), day("2025-06-13"))
	if err := valid.ValidateDates(today); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateGuestsAgainstCapacity(t *testing.T) {
	draft := NewDraft().WithGuests(3, 2, "44123987", "Ana", "García", "1144556677")

	if err := draft.ValidateGuests(4); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected capacity exceeded for 5 guests in capacity 4, got %v", err)
	}
	if err := draft.ValidateGuests(5); err != nil {
		t.Fatalf("unexpected error at exact capacity: %v", err)
	}
	// Capacity 0 means the lookup has not resolved yet; progression stays blocked.
	if err := draft.ValidateGuests(0); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected unknown capacity to block, got %v", err)
	}

	incomplete := NewDraft().WithGuests(1, 0, "44123987", "Ana", "", "1144556677")
	if err := incomplete.ValidateGuests(4); !errors.Is(err, ErrMissingGuestData) {
		t.Fatalf("expected missing guest data, got %v", err)
	}

	badDNI := NewDraft().WithGuests(1, 0, "no-num", "Ana", "García", "1144556677")
	if err := badDNI.ValidateGuests(4); !errors.Is(err, ErrInvalidDNI) {
		t.Fatalf("expected dni rejection, got %v", err)
	}

	noAdults := NewDraft().WithGuests(0, 1, "44123987", "Ana", "García", "1144556677")
	if err := noAdults.ValidateGuests(4); !errors.Is(err, ErrInvalidGuests) {
		t.Fatalf("expected adult requirement, got %v", err)
	}
}

func TestSubmissionFreezesComputedFields(t *testing.T) {
	draft := NewDraft().
		WithRoomType(2).
		WithDates(day("2025-06-10"), day("2025-06-13")).
		WithGuests(2, 1, "44123987", "Ana", "García", "1144556677")

	req, err := draft.Submission(100, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Nights != 3 {
		t.Fatalf("expected recomputed nights=3, got %d", req.Nights)
	}
	if req.TotalPrice != 300 {
		t.Fatalf("expected total 300, got %f", req.TotalPrice)
	}
	if req.Status != "Pendiente" {
		t.Fatalf("expected fixed Pendiente status, got %s", req.Status)
	}
	if req.GuestDNI != 44123987 {
		t.Fatalf("expected parsed dni, got %d", req.GuestDNI)
	}
	if req.CheckIn != "2025-06-10" || req.CheckOut != "2025-06-13" {
		t.Fatalf("unexpected wire dates: %s / %s", req.CheckIn, req.CheckOut)
	}
	if req.UserID != 9 {
		t.Fatalf("expected owner id attached, got %d", req.UserID)
	}
}

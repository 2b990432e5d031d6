package domain

import (
	"errors"
	"testing"
)

func TestComputeTotal(t *testing.T) {
	total, err := ComputeTotal(100, day("2025-06-10"), day("2025-06-13"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 300 {
		t.Fatalf("expected 300, got %f", total)
	}
}

func TestComputeTotalRoundsToCents(t *testing.T) {
	total, err := ComputeTotal(33.333, day("2025-06-10"), day("2025-06-13"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 100.00 {
		t.Fatalf("expected 100.00 after rounding, got %f", total)
	}
}

func TestComputeTotalRejectsInvalidRange(t *testing.T) {
	if _, err := ComputeTotal(100, day("2025-06-13"), day("2025-06-10")); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected invalid range, got %v", err)
	}
}

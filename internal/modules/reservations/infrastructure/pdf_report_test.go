package infrastructure

import (
	"bytes"
	"testing"
	"time"

	"medresFront/internal/modules/reservations/application/usecase"
	"medresFront/internal/modules/reservations/domain"
)

func TestReportDocumentRendersPDF(t *testing.T) {
	checkIn, _ := domain.ParseWireDate("2025-06-10")
	checkOut, _ := domain.ParseWireDate("2025-06-13")
	subset := []domain.Reservation{{
		Number:     1,
		FirstName:  "Ana",
		LastName:   "Suarez",
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Nights:     3,
		TotalPrice: 300,
		Status:     domain.StatusPending,
	}}

	doc := ReportDocument{
		Filters:      usecase.FilterSet{Name: "ana"},
		Reservations: subset,
		Totals:       usecase.Totals(subset),
		Occupancy:    usecase.OccupancyRate(subset),
		ByStatus:     usecase.ByStatus(subset),
		GeneratedAt:  time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("el PDF no deberia estar vacio")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("cabecera = %q, want %%PDF", buf.Bytes()[:8])
	}
}

func TestReportDocumentRendersEmptySubset(t *testing.T) {
	doc := ReportDocument{
		Totals:      usecase.Totals(nil),
		ByStatus:    usecase.ByStatus(nil),
		GeneratedAt: time.Now(),
	}
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("el PDF no deberia estar vacio")
	}
}

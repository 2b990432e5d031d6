package domain

import "testing"

func TestBuildReservationList(t *testing.T) {
	payload := []any{
		map[string]any{
			"nroReserva": float64(10), "fechaIngreso": "2025-07-01", "fechaSalida": "2025-07-04",
			"dias": float64(3), "adultos": float64(2), "niños": float64(1),
			"precioTotal": float64(300), "estado": "Pendiente",
			"dniHuesped": float64(44123987), "nombre": "Ana", "apellido": "García",
			"habitacione": map[string]any{
				"id": float64(4), "nombre": "Habitación 104", "tipoHabitacion": float64(2), "cantidadPersonas": float64(4),
			},
		},
		map[string]any{"nroReserva": float64(11), "estado": "confirmada", "fechaIngreso": "2025-07-02", "fechaSalida": "2025-07-03"},
		map[string]any{"sin": "identidad"},
	}

	list, ok := BuildReservationList(payload)
	if !ok {
		t.Fatal("expected reservation list")
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected entries without nroReserva skipped, got %d", len(list.Items))
	}

	first := list.Items[0]
	if first.Room == nil || first.Room.Capacity != 4 {
		t.Fatalf("expected embedded room with capacity, got %+v", first.Room)
	}
	if first.RoomTypeID != 2 {
		t.Fatalf("expected room type id backfilled from habitacione, got %d", first.RoomTypeID)
	}
	if FormatWireDate(first.CheckIn) != "2025-07-01" {
		t.Fatalf("unexpected check-in: %s", FormatWireDate(first.CheckIn))
	}
	if list.Items[1].Status != StatusConfirmed {
		t.Fatalf("expected case-insensitive status, got %s", list.Items[1].Status)
	}
}

func TestBuildReservationListAcceptsSingleObject(t *testing.T) {
	payload := map[string]any{"nroReserva": float64(7), "fechaIngreso": "2025-08-01", "fechaSalida": "2025-08-02"}
	list, ok := BuildReservationList(payload)
	if !ok || len(list.Items) != 1 {
		t.Fatalf("expected single-object payload to count as a one-item list, got %v", list)
	}
}

func TestNormalizeStatusCarriesUnknownValues(t *testing.T) {
	if got := NormalizeStatus("En Revisión"); got != Status("En Revisión") {
		t.Fatalf("expected unknown status carried verbatim, got %q", got)
	}
	if got := NormalizeStatus(" pendiente "); got != StatusPending {
		t.Fatalf("expected canonical pending, got %q", got)
	}
	if got := NormalizeStatus(nil); got != StatusUnknown {
		t.Fatalf("expected unknown for non-string, got %q", got)
	}
}

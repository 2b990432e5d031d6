package domain

import "testing"

func TestBuildRoomListWithEmbeddedRoomType(t *testing.T) {
	payload := []any{
		map[string]any{
			"id": float64(1), "nombre": "Habitación 101", "estado": "Disponible",
			"cantidadPersonas": float64(4),
			"tipohabitacione": map[string]any{
				"id": float64(2), "nombre": "Doble", "precio": "100.00", "activa": true,
			},
		},
		map[string]any{
			"id": float64(2), "nombre": "Habitación 102", "tipoHabitacion": float64(3),
			"estado": "mantenimiento", "cantidadPersonas": float64(2),
		},
	}

	list, ok := BuildRoomList(payload)
	if !ok {
		t.Fatal("expected room list")
	}
	if len(list.Items) != 2 || list.Total != 2 {
		t.Fatalf("unexpected list size: %d/%d", len(list.Items), list.Total)
	}
	first := list.Items[0]
	if first.RoomTypeID != 2 {
		t.Fatalf("expected room type id from embedded record, got %d", first.RoomTypeID)
	}
	if first.RoomType == nil || first.RoomType.NightlyRate != 100 {
		t.Fatalf("expected embedded room type with rate, got %+v", first.RoomType)
	}
	if first.Status != RoomStatusAvailable {
		t.Fatalf("unexpected status: %s", first.Status)
	}
	if list.Items[1].Status != RoomStatusMaintenance {
		t.Fatalf("expected case-insensitive status match, got %s", list.Items[1].Status)
	}
}

func TestNormalizeRoomRejectsMissingID(t *testing.T) {
	if _, ok := NormalizeRoom(map[string]any{"nombre": "sin id"}); ok {
		t.Fatal("expected rejection without id")
	}
}

func TestCapacityForRoomType(t *testing.T) {
	rooms := []Room{
		{ID: 1, RoomTypeID: 1, Capacity: 2},
		{ID: 2, RoomTypeID: 2, Capacity: 4},
	}
	capacity, ok := CapacityForRoomType(rooms, 2)
	if !ok || capacity != 4 {
		t.Fatalf("expected capacity 4, got %d (ok=%v)", capacity, ok)
	}
	if _, ok := CapacityForRoomType(rooms, 9); ok {
		t.Fatal("expected unknown capacity for unmatched room type")
	}
}

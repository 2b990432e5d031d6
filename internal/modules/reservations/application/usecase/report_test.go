package usecase

import (
	"testing"
	"time"

	"medresFront/internal/modules/reservations/domain"
)

func day(value string) time.Time {
	t, err := domain.ParseWireDate(value)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleReservations() []domain.Reservation {
	return []domain.Reservation{
		{Number: 1, FirstName: "Ana", LastName: "Suarez", Status: domain.StatusPending, CheckIn: day("2025-06-10"), CheckOut: day("2025-06-13"), Nights: 3, TotalPrice: 300, Room: &domain.ReservedRoom{ID: 4, Capacity: 2}},
		{Number: 2, FirstName: "Bruno", LastName: "Paz", Status: domain.StatusConfirmed, CheckIn: day("2025-06-11"), CheckOut: day("2025-06-12"), Nights: 1, TotalPrice: 120, Room: &domain.ReservedRoom{ID: 5, Capacity: 3}},
		{Number: 3, FirstName: "Carla", LastName: "Anaya", Status: domain.StatusConfirmed, CheckIn: day("2025-07-01"), CheckOut: day("2025-07-05"), Nights: 4, TotalPrice: 480},
		{Number: 4, FirstName: "Dario", LastName: "Mena", Status: domain.StatusCancelled, CheckIn: day("2025-07-20"), CheckOut: day("2025-07-22"), Nights: 2, TotalPrice: 200},
	}
}

func TestFilterByNameSubstringEitherField(t *testing.T) {
	got := Filter(sampleReservations(), FilterSet{Name: "ana"})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (Ana y Anaya)", len(got))
	}
	if got[0].Number != 1 || got[1].Number != 3 {
		t.Fatalf("got = %v, %v, want reservas 1 y 3", got[0].Number, got[1].Number)
	}
}

func TestFilterByStatusAndWindow(t *testing.T) {
	fs := FilterSet{
		Statuses: []domain.Status{domain.StatusConfirmed},
		From:     day("2025-06-11"),
		To:       day("2025-07-01"),
	}
	got := Filter(sampleReservations(), fs)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Window bounds are inclusive on checkIn.
	if got[0].Number != 2 || got[1].Number != 3 {
		t.Fatalf("got = %v, %v, want reservas 2 y 3", got[0].Number, got[1].Number)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	fs := FilterSet{Name: "a", Statuses: []domain.Status{domain.StatusConfirmed}}
	once := Filter(sampleReservations(), fs)
	twice := Filter(once, fs)
	if len(once) != len(twice) {
		t.Fatalf("len = %d vs %d, want identicos", len(once), len(twice))
	}
	for i := range once {
		if once[i].Number != twice[i].Number {
			t.Fatalf("posicion %d: %d vs %d", i, once[i].Number, twice[i].Number)
		}
	}
}

func TestSortStableDescendingByPrice(t *testing.T) {
	rs := []domain.Reservation{
		{Number: 1, TotalPrice: 100},
		{Number: 2, TotalPrice: 300},
		{Number: 3, TotalPrice: 100},
	}
	got := Sort(rs, SortByTotal, Descending)
	if got[0].Number != 2 || got[1].Number != 1 || got[2].Number != 3 {
		t.Fatalf("orden = %d,%d,%d, want 2,1,3 (empates en orden original)", got[0].Number, got[1].Number, got[2].Number)
	}
	if rs[0].Number != 1 {
		t.Fatal("Sort no debe mutar la entrada")
	}
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	rs := make([]domain.Reservation, 14)
	for i := range rs {
		rs[i].Number = i + 1
	}
	page := Paginate(rs, 6, 3)
	if len(page) != 2 || page[0].Number != 13 || page[1].Number != 14 {
		t.Fatalf("pagina 3 = %+v, want reservas 13 y 14", page)
	}
	clamped := Paginate(rs, 6, 99)
	if len(clamped) != 2 || clamped[0].Number != 13 {
		t.Fatalf("pagina 99 = %+v, want la ultima pagina valida", clamped)
	}
	if got := Paginate(rs, 6, 0); got[0].Number != 1 {
		t.Fatalf("pagina 0 = %+v, want la primera pagina", got)
	}
}

func TestTotalsAndOccupancy(t *testing.T) {
	rs := sampleReservations()
	totals := Totals(rs)
	if totals.TotalRevenue != 1100 {
		t.Fatalf("TotalRevenue = %v, want 1100", totals.TotalRevenue)
	}
	if totals.ReservationCount != 4 {
		t.Fatalf("ReservationCount = %d, want 4", totals.ReservationCount)
	}
	if totals.AverageStayNights != 2.5 {
		t.Fatalf("AverageStayNights = %v, want 2.5", totals.AverageStayNights)
	}

	// 10 noches sobre 365 x 2 plazas (primera reserva del subconjunto).
	rate := OccupancyRate(rs)
	want := 10.0 / 730.0 * 100
	if diff := rate - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("OccupancyRate = %v, want %v", rate, want)
	}
	if OccupancyRate(nil) != 0 {
		t.Fatal("OccupancyRate vacio deberia ser 0")
	}
}

func TestOccupancyFallsBackToUnitCapacity(t *testing.T) {
	rs := []domain.Reservation{{Number: 3, Nights: 4}}
	want := 4.0 / 365.0 * 100
	if got := OccupancyRate(rs); got != want {
		t.Fatalf("OccupancyRate = %v, want %v", got, want)
	}
}

func TestByStatusCounts(t *testing.T) {
	rs := []domain.Reservation{
		{Status: domain.StatusPending},
		{Status: domain.StatusConfirmed},
		{Status: domain.StatusConfirmed},
		{Status: domain.StatusCancelled},
	}
	got := ByStatus(rs)
	if got[domain.StatusPending] != 1 || got[domain.StatusConfirmed] != 2 || got[domain.StatusCancelled] != 1 {
		t.Fatalf("ByStatus = %v", got)
	}
}

func TestByPeriodYearBucketsByCheckInOnly(t *testing.T) {
	buckets := ByPeriod(sampleReservations(), PeriodYear, day("2025-01-01"), time.Time{}, time.Time{})
	if len(buckets) != 12 {
		t.Fatalf("len = %d, want 12 meses", len(buckets))
	}
	if buckets[5].Label != "Junio" || buckets[5].Count != 2 {
		t.Fatalf("Junio = %+v, want 2", buckets[5])
	}
	// La reserva 3 cruza hacia julio pero solo cuenta donde ingresa.
	if buckets[6].Label != "Julio" || buckets[6].Count != 2 {
		t.Fatalf("Julio = %+v, want 2", buckets[6])
	}
	if buckets[0].Count != 0 {
		t.Fatalf("Enero = %+v, want 0", buckets[0])
	}
}

func TestByPeriodCustomWindowDays(t *testing.T) {
	buckets := ByPeriod(sampleReservations(), PeriodCustom, time.Time{}, day("2025-06-10"), day("2025-06-12"))
	if len(buckets) != 3 {
		t.Fatalf("len = %d, want 3 dias", len(buckets))
	}
	if buckets[0].Label != "10/06" || buckets[0].Count != 1 {
		t.Fatalf("bucket 0 = %+v", buckets[0])
	}
	if buckets[1].Label != "11/06" || buckets[1].Count != 1 {
		t.Fatalf("bucket 1 = %+v", buckets[1])
	}
	if buckets[2].Count != 0 {
		t.Fatalf("bucket 2 = %+v, want 0", buckets[2])
	}
}

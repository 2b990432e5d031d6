package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"medresFront/internal/modules/reservations/domain"
)

// HistogramPeriod selects the bucketing granularity of the report chart.
type HistogramPeriod string

const (
	PeriodYear   HistogramPeriod = "year"
	PeriodMonth  HistogramPeriod = "month"
	PeriodCustom HistogramPeriod = "custom"
)

// FilterSet is the admin report criteria. A zero field means "no filter":
// empty name matches everything, an empty status set admits every status,
// zero From/To leave the stay window unbounded on that side.
type FilterSet struct {
	Name     string
	Statuses []domain.Status
	From     time.Time
	To       time.Time
	Period   HistogramPeriod
}

// Filter keeps the reservations matching every active criterion. The name
// matches as a case-insensitive substring of the first OR the last name;
// the date window is an inclusive containment test on the check-in day.
// Filtering an already filtered subset with the same criteria is a no-op.
func Filter(reservations []domain.Reservation, fs FilterSet) []domain.Reservation {
	name := strings.ToLower(strings.TrimSpace(fs.Name))
	statuses := make(map[domain.Status]struct{}, len(fs.Statuses))
	for _, s := range fs.Statuses {
		statuses[domain.NormalizeStatus(string(s))] = struct{}{}
	}

	out := make([]domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if name != "" &&
			!strings.Contains(strings.ToLower(r.FirstName), name) &&
			!strings.Contains(strings.ToLower(r.LastName), name) {
			continue
		}
		if len(statuses) > 0 {
			if _, ok := statuses[r.Status]; !ok {
				continue
			}
		}
		checkIn := domain.DayOf(r.CheckIn)
		if !fs.From.IsZero() && checkIn.Before(domain.DayOf(fs.From)) {
			continue
		}
		if !fs.To.IsZero() && checkIn.After(domain.DayOf(fs.To)) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Sort keys over the reservation scalar fields.
type SortKey string

const (
	SortByNumber    SortKey = "nroReserva"
	SortByCheckIn   SortKey = "fechaIngreso"
	SortByCheckOut  SortKey = "fechaSalida"
	SortByNights    SortKey = "dias"
	SortByTotal     SortKey = "precioTotal"
	SortByStatus    SortKey = "estado"
	SortByFirstName SortKey = "nombre"
	SortByLastName  SortKey = "apellido"
)

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Sort orders a copy of the subset by the given key. The sort is stable, so
// equal keys keep their incoming relative order. Unknown keys sort by
// reservation number.
func Sort(subset []domain.Reservation, key SortKey, direction SortDirection) []domain.Reservation {
	out := append([]domain.Reservation(nil), subset...)
	less := lessFunc(key)
	sort.SliceStable(out, func(i, j int) bool {
		if direction == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(key SortKey) func(a, b domain.Reservation) bool {
	switch key {
	case SortByCheckIn:
		return func(a, b domain.Reservation) bool { return a.CheckIn.Before(b.CheckIn) }
	case SortByCheckOut:
		return func(a, b domain.Reservation) bool { return a.CheckOut.Before(b.CheckOut) }
	case SortByNights:
		return func(a, b domain.Reservation) bool { return a.Nights < b.Nights }
	case SortByTotal:
		return func(a, b domain.Reservation) bool { return a.TotalPrice < b.TotalPrice }
	case SortByStatus:
		return func(a, b domain.Reservation) bool { return a.Status < b.Status }
	case SortByFirstName:
		return func(a, b domain.Reservation) bool {
			return strings.ToLower(a.FirstName) < strings.ToLower(b.FirstName)
		}
	case SortByLastName:
		return func(a, b domain.Reservation) bool {
			return strings.ToLower(a.LastName) < strings.ToLower(b.LastName)
		}
	default:
		return func(a, b domain.Reservation) bool { return a.Number < b.Number }
	}
}

// Paginate slices one page out of the ordered subset. Pages are 1-indexed;
// out-of-range page numbers clamp silently to the nearest valid page.
func Paginate(ordered []domain.Reservation, pageSize, pageNumber int) []domain.Reservation {
	if pageSize <= 0 || len(ordered) == 0 {
		return nil
	}
	lastPage := (len(ordered) + pageSize - 1) / pageSize
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > lastPage {
		pageNumber = lastPage
	}
	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if end > len(ordered) {
		end = len(ordered)
	}
	return ordered[start:end]
}

// ReportTotals summarizes the filtered subset for the report header.
type ReportTotals struct {
	TotalRevenue      float64
	AverageStayNights float64
	ReservationCount  int
}

func Totals(subset []domain.Reservation) ReportTotals {
	t := ReportTotals{ReservationCount: len(subset)}
	nights := 0
	for _, r := range subset {
		t.TotalRevenue += r.TotalPrice
		nights += r.Nights
	}
	if len(subset) > 0 {
		t.AverageStayNights = float64(nights) / float64(len(subset))
	}
	t.TotalRevenue = domain.RoundMoney(t.TotalRevenue)
	return t
}

// OccupancyRate approximates booked room-nights against a yearly baseline:
// (total nights) / (365 × capacity) × 100, where the capacity is taken from
// the first reservation's room in the subset. This mirrors the report the
// admins already use; it is not a per-room occupancy calculation.
func OccupancyRate(subset []domain.Reservation) float64 {
	if len(subset) == 0 {
		return 0
	}
	nights := 0
	for _, r := range subset {
		nights += r.Nights
	}
	capacity := 1
	if room := subset[0].Room; room != nil && room.Capacity > 0 {
		capacity = room.Capacity
	}
	return float64(nights) / (365 * float64(capacity)) * 100
}

// ByStatus counts the subset per reservation status.
func ByStatus(subset []domain.Reservation) map[domain.Status]int {
	counts := make(map[domain.Status]int)
	for _, r := range subset {
		counts[r.Status]++
	}
	return counts
}

// PeriodBucket is one bar of the report histogram.
type PeriodBucket struct {
	Label string
	Count int
}

var spanishMonths = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// ByPeriod buckets the subset by check-in date only; a stay never spreads
// across buckets. PeriodYear yields the twelve months of ref's year,
// PeriodMonth the days of ref's month, PeriodCustom the days of [from, to].
// Every bucket of the range appears, including empty ones.
func ByPeriod(subset []domain.Reservation, period HistogramPeriod, ref, from, to time.Time) []PeriodBucket {
	switch period {
	case PeriodYear:
		buckets := make([]PeriodBucket, 12)
		for i := range buckets {
			buckets[i].Label = spanishMonths[i]
		}
		for _, r := range subset {
			if r.CheckIn.Year() == ref.Year() {
				buckets[r.CheckIn.Month()-1].Count++
			}
		}
		return buckets
	case PeriodMonth:
		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)
		return dayBuckets(subset, first, last)
	case PeriodCustom:
		if from.IsZero() || to.IsZero() || to.Before(from) {
			return nil
		}
		return dayBuckets(subset, domain.DayOf(from), domain.DayOf(to))
	default:
		return nil
	}
}

func dayBuckets(subset []domain.Reservation, first, last time.Time) []PeriodBucket {
	index := make(map[string]int)
	var buckets []PeriodBucket
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		label := fmt.Sprintf("%02d/%02d", day.Day(), int(day.Month()))
		index[domain.FormatWireDate(day)] = len(buckets)
		buckets = append(buckets, PeriodBucket{Label: label})
	}
	for _, r := range subset {
		if i, ok := index[domain.FormatWireDate(domain.DayOf(r.CheckIn))]; ok {
			buckets[i].Count++
		}
	}
	return buckets
}

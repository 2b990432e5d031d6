package domain

import "time"

// AdminEdit carries the admin reservation form fields. Unlike the guest
// wizard, the price here is an independently edited value: changing the dates
// does not reprice the reservation, reproducing the original form's behavior.
type AdminEdit struct {
	RoomTypeID int
	CheckIn    time.Time
	CheckOut   time.Time
	Adults     int
	Children   int
	TotalPrice float64
	Status     Status
	GuestDNI   int
	FirstName  string
	LastName   string
	Phone      string
}

// ChangedFields diffs the edit against the stored reservation and returns only
// the fields that differ, keyed by their wire names. The PUT endpoint applies
// partial updates, so unchanged fields must stay out of the payload.
func (e AdminEdit) ChangedFields(current Reservation) map[string]any {
	changes := make(map[string]any)

	if e.RoomTypeID != current.RoomTypeID {
		changes["tipoHabitacion"] = e.RoomTypeID
	}
	if !DayOf(e.CheckIn).Equal(DayOf(current.CheckIn)) {
		changes["fechaIngreso"] = FormatWireDate(e.CheckIn)
	}
	if !DayOf(e.CheckOut).Equal(DayOf(current.CheckOut)) {
		changes["fechaSalida"] = FormatWireDate(e.CheckOut)
	}
	if nights, err := NightsBetween(e.CheckIn, e.CheckOut); err == nil && nights != current.Nights {
		changes["dias"] = nights
	}
	if e.Adults != current.Adults {
		changes["adultos"] = e.Adults
	}
	if e.Children != current.Children {
		changes["niños"] = e.Children
	}
	if e.TotalPrice != current.TotalPrice {
		changes["precioTotal"] = e.TotalPrice
	}
	if e.Status != current.Status {
		changes["estado"] = string(e.Status)
	}
	if e.GuestDNI != current.GuestDNI {
		changes["dniHuesped"] = e.GuestDNI
	}
	if e.FirstName != current.FirstName {
		changes["nombre"] = e.FirstName
	}
	if e.LastName != current.LastName {
		changes["apellido"] = e.LastName
	}
	if e.Phone != current.Phone {
		changes["telefono"] = e.Phone
	}

	return changes
}

package domain

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingRoomType  = errors.New("no room type selected")
	ErrMissingGuestData = errors.New("guest fields are incomplete")
	ErrInvalidGuests    = errors.New("at least one adult is required")
	ErrInvalidDNI       = errors.New("dni must be numeric")
	ErrCapacityExceeded = errors.New("guest count exceeds room capacity")
)

// Draft is the transient, unpersisted booking state accumulated by the wizard.
// It is a value type: every step produces a new snapshot instead of mutating a
// shared object, so step handlers stay pure.
type Draft struct {
	RoomTypeID int
	CheckIn    time.Time
	CheckOut   time.Time
	Adults     int
	Children   int
	DNI        string
	FirstName  string
	LastName   string
	Phone      string
}

// NewDraft returns the initial draft: one adult, everything else unset.
func NewDraft() Draft {
	return Draft{Adults: 1}
}

func (d Draft) WithRoomType(id int) Draft {
	d.RoomTypeID = id
	return d
}

func (d Draft) WithDates(checkIn, checkOut time.Time) Draft {
	d.CheckIn = DayOf(checkIn)
	d.CheckOut = DayOf(checkOut)
	return d
}

func (d Draft) WithGuests(adults, children int, dni, firstName, lastName, phone string) Draft {
	d.Adults = adults
	d.Children = children
	d.DNI = strings.TrimSpace(dni)
	d.FirstName = strings.TrimSpace(firstName)
	d.LastName = strings.TrimSpace(lastName)
	d.Phone = strings.TrimSpace(phone)
	return d
}

// ValidateRoomType gates leaving the room-type step.
func (d Draft) ValidateRoomType() error {
	if d.RoomTypeID == 0 {
		return ErrMissingRoomType
	}
	return nil
}

// ValidateDates gates leaving the date step: both dates set, neither in the
// past, check-out strictly after check-in.
func (d Draft) ValidateDates(today time.Time) error {
	if d.CheckIn.IsZero() || d.CheckOut.IsZero() {
		return ErrMissingDates
	}
	if BeforeToday(d.CheckIn, today) || BeforeToday(d.CheckOut, today) {
		return ErrDateInPast
	}
	if _, err := NightsBetween(d.CheckIn, d.CheckOut); err != nil {
		return err
	}
	return nil
}

// ValidateGuests gates leaving the guest step against the room capacity. An
// unknown capacity arrives as 0 and blocks progression until resolved.
func (d Draft) ValidateGuests(capacity int) error {
	if d.Adults < 1 || d.Children < 0 {
		return ErrInvalidGuests
	}
	if d.DNI == "" || d.FirstName == "" || d.LastName == "" || d.Phone == "" {
		return ErrMissingGuestData
	}
	if _, err := strconv.Atoi(d.DNI); err != nil {
		return ErrInvalidDNI
	}
	if d.Adults+d.Children > capacity {
		return ErrCapacityExceeded
	}
	return nil
}

// CreateReservationRequest is the wire payload for POST /reservas.
type CreateReservationRequest struct {
	RoomTypeID int     `json:"tipoHabitacion"`
	CheckIn    string  `json:"fechaIngreso"`
	CheckOut   string  `json:"fechaSalida"`
	Nights     int     `json:"dias"`
	Adults     int     `json:"adultos"`
	Children   int     `json:"niños"`
	TotalPrice float64 `json:"precioTotal"`
	Status     string  `json:"estado"`
	GuestDNI   int     `json:"dniHuesped"`
	FirstName  string  `json:"nombre"`
	LastName   string  `json:"apellido"`
	Phone      string  `json:"telefono"`
	UserID     int     `json:"idUsuario,omitempty"`
}

// Submission freezes the draft into a creation request: nights and total are
// recomputed from the dates and rate, the status is fixed to Pendiente, and
// the DNI is parsed to its numeric wire form. userID is attached only when
// the guest is logged in (zero means anonymous).
func (d Draft) Submission(rate float64, userID int) (CreateReservationRequest, error) {
	nights, err := NightsBetween(d.CheckIn, d.CheckOut)
	if err != nil {
		return CreateReservationRequest{}, err
	}
	dni, err := strconv.Atoi(d.DNI)
	if err != nil {
		return CreateReservationRequest{}, ErrInvalidDNI
	}
	total, err := ComputeTotal(rate, d.CheckIn, d.CheckOut)
	if err != nil {
		return CreateReservationRequest{}, err
	}
	return CreateReservationRequest{
		RoomTypeID: d.RoomTypeID,
		CheckIn:    FormatWireDate(d.CheckIn),
		CheckOut:   FormatWireDate(d.CheckOut),
		Nights:     nights,
		Adults:     d.Adults,
		Children:   d.Children,
		TotalPrice: total,
		Status:     string(StatusPending),
		GuestDNI:   dni,
		FirstName:  d.FirstName,
		LastName:   d.LastName,
		Phone:      d.Phone,
		UserID:     userID,
	}, nil
}

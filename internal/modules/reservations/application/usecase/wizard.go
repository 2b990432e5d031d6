package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	catalog "medresFront/internal/modules/catalog/domain"
	"medresFront/internal/modules/reservations/application/port"
	"medresFront/internal/modules/reservations/domain"
	"medresFront/internal/platform/medres"
)

// Wizard step identifiers, in walk order.
type WizardState string

const (
	StateSelectRoomType WizardState = "select_room_type"
	StateSelectDates    WizardState = "select_dates"
	StateGuestDetails   WizardState = "guest_details"
	StateReviewSummary  WizardState = "review_summary"
	StateSubmitting     WizardState = "submitting"
	StateSuccess        WizardState = "success"
	StateFailed         WizardState = "failed"
)

var (
	ErrInvalidTransition  = errors.New("transicion de paso no permitida")
	ErrSubmissionInFlight = errors.New("ya hay un envio en curso")
	ErrUnknownRoomType    = errors.New("tipo de habitacion desconocido")
	ErrWizardNotFound     = errors.New("sesion de reserva no encontrada")
)

// genericSubmitFailure is shown when the backend rejects a reservation
// without a structured message.
const genericSubmitFailure = "Ocurrió un error al procesar la reserva. Por favor, intente nuevamente."

const defaultSubmitTimeout = 15 * time.Second

// Wizard drives one guest through the reservation flow. All mutators take
// the lock; Confirm releases it around the network call and uses the epoch
// counter to discard completions that land after a Reset.
type Wizard struct {
	mu sync.Mutex

	id        string
	state     WizardState
	draft     domain.Draft
	roomTypes []catalog.RoomType

	capacity      int
	capacityKnown bool

	pending    *domain.CreateReservationRequest
	created    *domain.Reservation
	failure    string
	submitting bool
	epoch      int

	userID int

	directory     port.RoomTypeDirectory
	creator       port.ReservationCreator
	now           func() time.Time
	submitTimeout time.Duration
}

// WizardView is the lock-free snapshot handed to transports.
type WizardView struct {
	ID            string
	State         WizardState
	Draft         domain.Draft
	RoomTypes     []catalog.RoomType
	Capacity      int
	CapacityKnown bool
	Total         float64
	Failure       string
	Created       *domain.Reservation
}

// NewWizard loads the active room types and opens the flow at the first
// step. A directory failure aborts the session; the caller retries by
// starting a new wizard.
func NewWizard(ctx context.Context, directory port.RoomTypeDirectory, creator port.ReservationCreator, userID int) (*Wizard, error) {
	roomTypes, err := directory.ActiveRoomTypes(ctx)
	if err != nil {
		return nil, err
	}
	return &Wizard{
		id:            uuid.NewString(),
		state:         StateSelectRoomType,
		draft:         domain.NewDraft(),
		roomTypes:     roomTypes,
		userID:        userID,
		directory:     directory,
		creator:       creator,
		now:           time.Now,
		submitTimeout: defaultSubmitTimeout,
	}, nil
}

func (w *Wizard) ID() string {
	return w.id
}

// Snapshot copies the current state for rendering.
func (w *Wizard) Snapshot() WizardView {
	w.mu.Lock()
	defer w.mu.Unlock()
	return WizardView{
		ID:            w.id,
		State:         w.state,
		Draft:         w.draft,
		RoomTypes:     append([]catalog.RoomType(nil), w.roomTypes...),
		Capacity:      w.capacity,
		CapacityKnown: w.capacityKnown,
		Total:         w.totalLocked(),
		Failure:       w.failure,
		Created:       w.created,
	}
}

// SelectRoomType records the chosen type and advances to date selection.
// Only types present in the loaded catalog are accepted.
func (w *Wizard) SelectRoomType(roomTypeID int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateSelectRoomType {
		return ErrInvalidTransition
	}
	if _, ok := w.rateForLocked(roomTypeID); !ok {
		return ErrUnknownRoomType
	}
	w.draft = w.draft.WithRoomType(roomTypeID)
	w.state = StateSelectDates
	return nil
}

// SetDates stores the stay window without advancing; progression is gated
// by Next so the guest can adjust dates freely.
func (w *Wizard) SetDates(checkIn, checkOut time.Time) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateSelectDates {
		return ErrInvalidTransition
	}
	w.draft = w.draft.WithDates(checkIn, checkOut)
	return nil
}

// SetGuests stores occupancy and contact data for the guest details step.
func (w *Wizard) SetGuests(adults, children int, dni, firstName, lastName, phone string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateGuestDetails {
		return ErrInvalidTransition
	}
	w.draft = w.draft.WithGuests(adults, children, dni, firstName, lastName, phone)
	return nil
}

// Next validates the open step and advances. Transitioning out of the date
// step resolves the room capacity; a lookup miss leaves the capacity
// unknown, which makes the guest guard fail until a later attempt succeeds.
func (w *Wizard) Next(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.state {
	case StateSelectRoomType:
		if err := w.draft.ValidateRoomType(); err != nil {
			return err
		}
		w.state = StateSelectDates
	case StateSelectDates:
		if err := w.draft.ValidateDates(w.now()); err != nil {
			return err
		}
		w.resolveCapacityLocked(ctx)
		w.state = StateGuestDetails
	case StateGuestDetails:
		if !w.capacityKnown {
			w.resolveCapacityLocked(ctx)
		}
		if err := w.draft.ValidateGuests(w.capacity); err != nil {
			return err
		}
		w.state = StateReviewSummary
	default:
		return ErrInvalidTransition
	}
	return nil
}

// Prev steps back through the collecting states. Terminal and in-flight
// states only leave via Confirm, Retry or Reset.
func (w *Wizard) Prev() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.state {
	case StateSelectDates:
		w.state = StateSelectRoomType
	case StateGuestDetails:
		w.state = StateSelectDates
	case StateReviewSummary:
		w.state = StateGuestDetails
	default:
		return ErrInvalidTransition
	}
	return nil
}

// Total prices the draft against the selected type's nightly rate. An
// unresolved type or incomplete dates price to zero.
func (w *Wizard) Total() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.totalLocked()
}

func (w *Wizard) totalLocked() float64 {
	rate, ok := w.rateForLocked(w.draft.RoomTypeID)
	if !ok {
		return 0
	}
	total, err := domain.ComputeTotal(rate, w.draft.CheckIn, w.draft.CheckOut)
	if err != nil {
		return 0
	}
	return total
}

func (w *Wizard) rateForLocked(roomTypeID int) (float64, bool) {
	for _, rt := range w.roomTypes {
		if rt.ID == roomTypeID {
			return rt.NightlyRate, true
		}
	}
	return 0, false
}

func (w *Wizard) resolveCapacityLocked(ctx context.Context) {
	capacity, err := w.directory.RoomTypeCapacity(ctx, w.draft.RoomTypeID)
	if err != nil || capacity <= 0 {
		w.capacityKnown = false
		w.capacity = 0
		return
	}
	w.capacity = capacity
	w.capacityKnown = true
}

// Confirm freezes the draft and submits it. The request is built once and
// kept so a Retry after failure re-issues the identical payload. The call
// is one-shot: a second Confirm while one is in flight is rejected.
func (w *Wizard) Confirm(ctx context.Context) error {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if w.state != StateReviewSummary {
		w.mu.Unlock()
		return ErrInvalidTransition
	}
	rate, _ := w.rateForLocked(w.draft.RoomTypeID)
	req, err := w.draft.Submission(rate, w.userID)
	if err != nil {
		w.mu.Unlock()
		return err
	}
	w.pending = &req
	w.mu.Unlock()
	return w.submit(ctx)
}

// Retry re-sends the frozen request after a rejection. Nothing is rebuilt,
// so the backend sees the exact bytes it already refused.
func (w *Wizard) Retry(ctx context.Context) error {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if w.state != StateFailed {
		w.mu.Unlock()
		return ErrInvalidTransition
	}
	if w.pending == nil {
		w.mu.Unlock()
		return ErrInvalidTransition
	}
	w.mu.Unlock()
	return w.submit(ctx)
}

func (w *Wizard) submit(ctx context.Context) error {
	w.mu.Lock()
	w.state = StateSubmitting
	w.submitting = true
	w.failure = ""
	epoch := w.epoch
	req := *w.pending
	w.mu.Unlock()

	callCtx, cancel := context.WithTimeout(ctx, w.submitTimeout)
	defer cancel()
	created, err := w.creator.Create(callCtx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.epoch != epoch {
		// Reset happened mid-flight; the session restarted and this
		// outcome no longer belongs to it.
		return nil
	}
	w.submitting = false
	if err != nil {
		w.state = StateFailed
		if msg := medres.RejectionMessage(err); msg != "" {
			w.failure = msg
		} else {
			w.failure = genericSubmitFailure
		}
		return err
	}
	w.state = StateSuccess
	w.created = created
	w.pending = nil
	w.draft = domain.NewDraft()
	return nil
}

// Reset abandons the session and returns to the first step. An in-flight
// submission keeps running but its completion is dropped.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.epoch++
	w.state = StateSelectRoomType
	w.draft = domain.NewDraft()
	w.pending = nil
	w.created = nil
	w.failure = ""
	w.submitting = false
	w.capacity = 0
	w.capacityKnown = false
}

// WizardStore keeps the live wizard sessions keyed by their id.
type WizardStore struct {
	mu      sync.RWMutex
	wizards map[string]*Wizard
}

func NewWizardStore() *WizardStore {
	return &WizardStore{wizards: make(map[string]*Wizard)}
}

func (s *WizardStore) Put(w *Wizard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wizards[w.ID()] = w
}

func (s *WizardStore) Get(id string) (*Wizard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.wizards[id]
	if !ok {
		return nil, ErrWizardNotFound
	}
	return w, nil
}

func (s *WizardStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wizards, id)
}

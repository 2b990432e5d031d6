package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	catalog "medresFront/internal/modules/catalog/domain"
	"medresFront/internal/modules/reservations/application/usecase"
	"medresFront/internal/modules/reservations/domain"
	"medresFront/internal/platform/medres"
	"medresFront/internal/shared/auth"
)

type stubDirectory struct {
	roomTypes []catalog.RoomType
	capacity  int
}

func (s *stubDirectory) ActiveRoomTypes(ctx context.Context) ([]catalog.RoomType, error) {
	return s.roomTypes, nil
}

func (s *stubDirectory) RoomTypeCapacity(ctx context.Context, roomTypeID int) (int, error) {
	return s.capacity, nil
}

type stubCreator struct {
	result *domain.Reservation
	err    error
}

func (s *stubCreator) Create(ctx context.Context, req domain.CreateReservationRequest) (*domain.Reservation, error) {
	return s.result, s.err
}

func newWizardServer(creator *stubCreator) (*echo.Echo, *WizardHandler) {
	directory := &stubDirectory{
		roomTypes: []catalog.RoomType{{ID: 2, Name: "Doble", NightlyRate: 100, Active: true}},
		capacity:  4,
	}
	handler := NewWizardHandler(usecase.NewWizardStore(), directory, creator, auth.NewSession())
	e := echo.New()
	handler.Register(e.Group("/api/front/reserva"))
	return e, handler
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	payload := map[string]any{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("respuesta no es JSON: %v (%s)", err, rec.Body.String())
		}
	}
	return rec.Code, payload
}

func TestWizardHTTPFlow(t *testing.T) {
	checkIn := time.Now().UTC().AddDate(0, 0, 10).Format(domain.WireDateLayout)
	checkOut := time.Now().UTC().AddDate(0, 0, 13).Format(domain.WireDateLayout)
	e, _ := newWizardServer(&stubCreator{result: &domain.Reservation{Number: 41, Status: domain.StatusPending}})

	code, payload := doJSON(t, e, http.MethodPost, "/api/front/reserva", "")
	if code != http.StatusCreated {
		t.Fatalf("start = %d (%v)", code, payload)
	}
	id, _ := payload["id"].(string)
	if id == "" {
		t.Fatalf("payload sin id: %v", payload)
	}
	base := "/api/front/reserva/" + id

	if code, payload = doJSON(t, e, http.MethodPost, base+"/tipo-habitacion", `{"tipoHabitacion":2}`); code != http.StatusOK {
		t.Fatalf("tipo-habitacion = %d (%v)", code, payload)
	}
	body := `{"fechaIngreso":"` + checkIn + `","fechaSalida":"` + checkOut + `"}`
	if code, payload = doJSON(t, e, http.MethodPost, base+"/fechas", body); code != http.StatusOK {
		t.Fatalf("fechas = %d (%v)", code, payload)
	}
	if code, payload = doJSON(t, e, http.MethodPost, base+"/siguiente", ""); code != http.StatusOK {
		t.Fatalf("siguiente = %d (%v)", code, payload)
	}
	guests := `{"adultos":2,"niños":1,"dniHuesped":"30111222","nombre":"Ana","apellido":"Suarez","telefono":"555-0101"}`
	if code, payload = doJSON(t, e, http.MethodPost, base+"/huesped", guests); code != http.StatusOK {
		t.Fatalf("huesped = %d (%v)", code, payload)
	}
	if code, payload = doJSON(t, e, http.MethodPost, base+"/siguiente", ""); code != http.StatusOK {
		t.Fatalf("siguiente a resumen = %d (%v)", code, payload)
	}
	if payload["precioTotal"] != float64(300) {
		t.Fatalf("precioTotal = %v, want 300", payload["precioTotal"])
	}

	code, payload = doJSON(t, e, http.MethodPost, base+"/confirmar", "")
	if code != http.StatusOK {
		t.Fatalf("confirmar = %d (%v)", code, payload)
	}
	if payload["paso"] != string(usecase.StateSuccess) {
		t.Fatalf("paso = %v, want %s", payload["paso"], usecase.StateSuccess)
	}
}

func TestWizardHTTPRejectionShowsBackendMessage(t *testing.T) {
	checkIn := time.Now().UTC().AddDate(0, 0, 5).Format(domain.WireDateLayout)
	checkOut := time.Now().UTC().AddDate(0, 0, 7).Format(domain.WireDateLayout)
	e, _ := newWizardServer(&stubCreator{err: &medres.RejectionError{StatusCode: 400, Message: "DNI duplicado"}})

	_, payload := doJSON(t, e, http.MethodPost, "/api/front/reserva", "")
	base := "/api/front/reserva/" + payload["id"].(string)

	doJSON(t, e, http.MethodPost, base+"/tipo-habitacion", `{"tipoHabitacion":2}`)
	doJSON(t, e, http.MethodPost, base+"/fechas", `{"fechaIngreso":"`+checkIn+`","fechaSalida":"`+checkOut+`"}`)
	doJSON(t, e, http.MethodPost, base+"/siguiente", "")
	doJSON(t, e, http.MethodPost, base+"/huesped", `{"adultos":2,"niños":0,"dniHuesped":"30111222","nombre":"Ana","apellido":"Suarez","telefono":"555-0101"}`)
	doJSON(t, e, http.MethodPost, base+"/siguiente", "")

	code, payload := doJSON(t, e, http.MethodPost, base+"/confirmar", "")
	if code != http.StatusBadGateway {
		t.Fatalf("confirmar = %d (%v)", code, payload)
	}
	if payload["error"] != "DNI duplicado" {
		t.Fatalf("error = %v, want mensaje del backend", payload["error"])
	}
	if payload["paso"] != string(usecase.StateFailed) {
		t.Fatalf("paso = %v, want %s", payload["paso"], usecase.StateFailed)
	}

	if code, payload = doJSON(t, e, http.MethodPost, base+"/reiniciar", ""); code != http.StatusOK {
		t.Fatalf("reiniciar = %d (%v)", code, payload)
	}
	if payload["paso"] != string(usecase.StateSelectRoomType) {
		t.Fatalf("paso tras reiniciar = %v", payload["paso"])
	}
}

func TestWizardHTTPUnknownSession(t *testing.T) {
	e, _ := newWizardServer(&stubCreator{})
	code, payload := doJSON(t, e, http.MethodGet, "/api/front/reserva/no-existe", "")
	if code != http.StatusNotFound {
		t.Fatalf("code = %d (%v)", code, payload)
	}
}

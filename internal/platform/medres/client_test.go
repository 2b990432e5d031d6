package medres

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDoNormalizesStructuredRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"DNI duplicado"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)
	_, err := client.Do(context.Background(), http.MethodPost, "/reservas", "", map[string]any{})
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("expected rejection, got %v", err)
	}
	if got := RejectionMessage(err); got != "DNI duplicado" {
		t.Fatalf("expected verbatim backend message, got %q", got)
	}
}

func TestDoNormalizesBodilessFailureAsTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)
	_, err := client.Do(context.Background(), http.MethodGet, "/reservas", "", nil)
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if RejectionMessage(err) != "" {
		t.Fatal("transport failures must not carry a backend message")
	}
}

func TestDoMapsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)
	_, err := client.Do(context.Background(), http.MethodGet, "/tipohabitaciones/99", "", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDoAttachesBearerTokenAndBasePath(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)
	if _, err := client.Do(context.Background(), http.MethodGet, "reservas/get/by/user", "tok-123", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/medres/reservas/get/by/user" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("unexpected auth header: %s", gotAuth)
	}
}

func TestDoTreatsNoContentAsEmptyPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)
	payload, err := client.Do(context.Background(), http.MethodDelete, "/reservas/5", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload != nil {
		t.Fatalf("expected nil payload, got %v", payload)
	}
}

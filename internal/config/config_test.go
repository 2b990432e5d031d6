package config

import "testing"

func TestLoadWebsocketSendBuffer(t *testing.T) {
	t.Setenv("WS_SEND_BUFFER", "")
	if got := Load().Websocket.SendBuffer; got != 16 {
		t.Fatalf("SendBuffer = %d, want 16 por defecto", got)
	}

	t.Setenv("WS_SEND_BUFFER", "64")
	if got := Load().Websocket.SendBuffer; got != 64 {
		t.Fatalf("SendBuffer = %d, want 64", got)
	}

	t.Setenv("WS_SEND_BUFFER", "no-numerico")
	if got := Load().Websocket.SendBuffer; got != 16 {
		t.Fatalf("SendBuffer = %d, want fallback 16", got)
	}
}

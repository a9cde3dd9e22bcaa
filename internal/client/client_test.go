package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListDecodesItemsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v1/memories" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Fatal("expected request id header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":"m1","title":"first"},{"id":"m2","title":"second"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	memories, err := c.ListMemories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(memories) != 2 || memories[0].ID != "m1" || memories[1].Title != "second" {
		t.Fatalf("unexpected items %#v", memories)
	}
}

func TestActionReturnsDaemonMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/memories/m1/reindex" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"message":"Reindex queued"}`))
	}))
	defer srv.Close()

	msg, err := New(srv.URL).ReindexMemory(context.Background(), "m1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Reindex queued" {
		t.Fatalf("expected daemon message, got %q", msg)
	}
}

func TestActionErrorSurfacesVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"memory is pinned"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).DeleteMemory(context.Background(), "m1")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", reqErr.StatusCode)
	}
	if err.Error() != "memory is pinned" {
		t.Fatalf("expected daemon error verbatim, got %q", err.Error())
	}
}

func TestErrorWithoutBodyFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := New(srv.URL).Health(context.Background())
	if err == nil || err.Error() != "daemon returned http 502" {
		t.Fatalf("expected status fallback message, got %v", err)
	}
}

func TestTransportFailureMapsToUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := New(srv.URL).ListIntegrations(context.Background())
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("expected unreachable sentinel, got %v", err)
	}
	if err.Error() != "Unable to reach daemon" {
		t.Fatalf("expected fixed unreachable message, got %q", err.Error())
	}
}

func TestRetarget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	c := New("http://127.0.0.1:1") // nothing listens here
	c.Retarget(srv.URL)
	if _, err := c.ListPersonas(context.Background()); err != nil {
		t.Fatalf("expected retargeted client to reach server, got %v", err)
	}
}

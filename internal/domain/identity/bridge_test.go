package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newBridgeFor(t *testing.T, handler http.HandlerFunc) (*Bridge, *httptest.Server) {
	t.Helper()

	ts := httptest.NewServer(handler)
	b, err := NewBridge(ts.URL, time.Second)
	if err != nil {
		t.Fatalf("new bridge: %v", err)
	}
	return b, ts
}

func TestFetchCurrentUserID_ActiveSession(t *testing.T) {
	b, ts := newBridgeFor(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/getAuthenticatedUserId" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u1"}`))
	})
	defer ts.Close()

	st := b.FetchCurrentUserID(context.Background(), nil)
	if st.Kind != KindUser || st.UserID != "u1" {
		t.Fatalf("expected user u1, got %+v", st)
	}
}

func TestFetchCurrentUserID_NoSession(t *testing.T) {
	b, ts := newBridgeFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":null}`))
	})
	defer ts.Close()

	st := b.FetchCurrentUserID(context.Background(), nil)
	if st.Kind != KindNone {
		t.Fatalf("expected no session, got %+v", st)
	}
}

func TestFetchCurrentUserID_UpstreamErrorIsFailedNotNull(t *testing.T) {
	b, ts := newBridgeFor(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})
	defer ts.Close()

	st := b.FetchCurrentUserID(context.Background(), nil)
	if st.Kind != KindFailed {
		t.Fatalf("expected failed check, got %+v", st)
	}
}

func TestFetchCurrentUserID_TransportFailureIsFailed(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close() // servidor caído

	b, err := NewBridge(url, time.Second)
	if err != nil {
		t.Fatalf("new bridge: %v", err)
	}

	if st := b.FetchCurrentUserID(context.Background(), nil); st.Kind != KindFailed {
		t.Fatalf("expected failed check, got %+v", st)
	}
}

func TestFetchCurrentUserID_ForwardsSessionHeaders(t *testing.T) {
	b, ts := newBridgeFor(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Debug-User-ID") != "u9" {
			t.Errorf("session header not forwarded")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u9"}`))
	})
	defer ts.Close()

	st := b.FetchCurrentUserID(context.Background(), map[string]string{"X-Debug-User-ID": "u9"})
	if st.Kind != KindUser || st.UserID != "u9" {
		t.Fatalf("expected user u9, got %+v", st)
	}
}

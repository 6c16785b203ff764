package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-board/internal/domain/identity"
	"pet-board/internal/ports/auth"
)

type fakeVerifier struct {
	claims auth.Claims
	err    error
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	return f.claims, f.err
}

func stateFor(t *testing.T, verifier auth.SessionVerifier, mutate func(*http.Request)) identity.State {
	t.Helper()

	var got identity.State
	h := SessionContext(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = identity.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if mutate != nil {
		mutate(req)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestSessionContext_DevModeDebugHeader(t *testing.T) {
	st := stateFor(t, nil, func(r *http.Request) {
		r.Header.Set("X-Debug-User-ID", "u1")
	})
	if st.Kind != identity.KindUser || st.UserID != "u1" {
		t.Fatalf("expected user u1, got %+v", st)
	}
}

func TestSessionContext_NoToken(t *testing.T) {
	st := stateFor(t, &fakeVerifier{}, nil)
	if st.Kind != identity.KindNone {
		t.Fatalf("expected no session, got %+v", st)
	}
}

func TestSessionContext_ValidCookie(t *testing.T) {
	v := &fakeVerifier{claims: auth.Claims{UserID: "u2"}}
	st := stateFor(t, v, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "__session", Value: "tok"})
	})
	if st.Kind != identity.KindUser || st.UserID != "u2" {
		t.Fatalf("expected user u2, got %+v", st)
	}
}

func TestSessionContext_InvalidTokenIsNoSession(t *testing.T) {
	v := &fakeVerifier{err: auth.ErrUnauthorized}
	st := stateFor(t, v, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer bad")
	})
	if st.Kind != identity.KindNone {
		t.Fatalf("expected no session for invalid token, got %+v", st)
	}
}

func TestSessionContext_UpstreamFailureIsFailed(t *testing.T) {
	v := &fakeVerifier{err: auth.ErrUnavailable}
	st := stateFor(t, v, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer tok")
	})
	if st.Kind != identity.KindFailed {
		t.Fatalf("expected failed check, got %+v", st)
	}
}

func TestFromContext_WithoutMiddleware(t *testing.T) {
	if st := identity.FromContext(context.Background()); st.Kind != identity.KindNone {
		t.Fatalf("expected none, got %+v", st)
	}
}

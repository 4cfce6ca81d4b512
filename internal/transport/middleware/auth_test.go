package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/prize2pride-backend/pkg/ctxutil"
)

func TestAuth(t *testing.T) {
	t.Parallel()

	reviewer := uuid.New()
	validator := validatorFunc(func(_ context.Context, token string) (uuid.UUID, string, error) {
		switch token {
		case "institution-token":
			return reviewer, "institution", nil
		default:
			return uuid.Nil, "", errors.New("signature is invalid")
		}
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCalled bool
		wantUser   uuid.UUID
		wantRole   string
	}{
		{name: "valid token", header: "Bearer institution-token", wantStatus: http.StatusOK, wantCalled: true, wantUser: reviewer, wantRole: "institution"},
		{name: "invalid token", header: "Bearer forged", wantStatus: http.StatusUnauthorized},
		{name: "no header is anonymous", header: "", wantStatus: http.StatusOK, wantCalled: true},
		{name: "basic auth is anonymous", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusOK, wantCalled: true},
		{name: "empty bearer is anonymous", header: "Bearer ", wantStatus: http.StatusOK, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				called bool
				user   uuid.UUID
				role   string
			)
			h := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				user, _ = ctxutil.UserIDFromCtx(r.Context())
				role = ctxutil.UserRoleFromCtx(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/admin/lessons", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if called != tt.wantCalled {
				t.Fatalf("handler called = %v, want %v", called, tt.wantCalled)
			}
			if user != tt.wantUser {
				t.Errorf("user = %v, want %v", user, tt.wantUser)
			}
			if role != tt.wantRole {
				t.Errorf("role = %q, want %q", role, tt.wantRole)
			}
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc.def.ghi", "abc.def.ghi"},
		{"bearer abc", "abc"},
		{"BEARER abc", "abc"},
		{"Bearer   padded  ", "padded"},
		{"Basic dXNlcjpwYXNz", ""},
		{"Bearertoken", ""},
		{"Bearer", ""},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		if got := extractBearerToken(req); got != tc.want {
			t.Errorf("extractBearerToken(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/prize2pride-backend/pkg/ctxutil"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		wantKeep bool
	}{
		{name: "reuses caller id", incoming: "batch-approve-7", wantKeep: true},
		{name: "generates when missing", incoming: ""},
		{name: "replaces oversized id", incoming: strings.Repeat("x", 129)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var inCtx string
			h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				inCtx = ctxutil.RequestIDFromCtx(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/admin/lessons", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			header := rec.Header().Get(RequestIDHeader)
			if header != inCtx {
				t.Errorf("header %q differs from context %q", header, inCtx)
			}
			if tt.wantKeep {
				if header != tt.incoming {
					t.Errorf("request id = %q, want %q", header, tt.incoming)
				}
				return
			}
			if _, err := uuid.Parse(header); err != nil {
				t.Errorf("generated id %q is not a UUID: %v", header, err)
			}
		})
	}
}

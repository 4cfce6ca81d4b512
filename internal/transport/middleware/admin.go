package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/prize2pride-backend/internal/domain"
	"github.com/heartmarshall/prize2pride-backend/pkg/ctxutil"
)

// CheckReviewer returns domain.ErrUnauthorized for anonymous callers and
// domain.ErrForbidden when the caller's role may not moderate content.
func CheckReviewer(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !domain.Role(ctxutil.UserRoleFromCtx(ctx)).CanReview() {
		return domain.ErrForbidden
	}
	return nil
}

// RequireReviewer guards routes that need the admin or institution role.
// It must run after Auth.
func RequireReviewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch err := CheckReviewer(r.Context()); err {
		case nil:
			next.ServeHTTP(w, r)
		case domain.ErrUnauthorized:
			writeError(w, http.StatusUnauthorized, "authentication required")
		default:
			writeError(w, http.StatusForbidden, "reviewer access required")
		}
	})
}

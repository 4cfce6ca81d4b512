package rest

import (
	"net/http"

	"github.com/heartmarshall/prize2pride-backend/internal/transport/middleware"
)

// Router wires the HTTP endpoints of the review API.
type Router struct {
	Health *HealthHandler
	Review *ReviewHandler
	// Global is applied to every request, outermost first.
	Global []middleware.Middleware
}

// Handler builds the root http.Handler. Health probes are public; every
// /admin route requires a reviewer.
func (rt Router) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	admin := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireReviewer(h)
	}

	mux.Handle("GET /admin/lessons", admin(rt.Review.List))
	mux.Handle("GET /admin/lessons/stats", admin(rt.Review.Stats))
	mux.Handle("GET /admin/lessons/export", admin(rt.Review.Export))
	mux.Handle("GET /admin/lessons/{id}", admin(rt.Review.Get))
	mux.Handle("POST /admin/lessons/batch-approve", admin(rt.Review.BatchApprove))
	mux.Handle("POST /admin/lessons/{id}/approve", admin(rt.Review.Approve))
	mux.Handle("POST /admin/lessons/{id}/reject", admin(rt.Review.Reject))
	mux.Handle("PUT /admin/lessons/{id}/notes", admin(rt.Review.UpdateNotes))

	return middleware.Chain(rt.Global...)(mux)
}

package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/prize2pride-backend/internal/domain"
	"github.com/heartmarshall/prize2pride-backend/internal/service/review"
)

type reviewService interface {
	List(ctx context.Context, in review.ListInput) ([]review.LessonView, error)
	Get(ctx context.Context, id int64) (review.LessonView, error)
	Approve(ctx context.Context, id int64) (review.LessonView, error)
	Reject(ctx context.Context, id int64) (review.LessonView, error)
	UpdateNotes(ctx context.Context, id int64, notes string) (review.LessonView, error)
	BatchApprove(ctx context.Context, ids []int64) (review.BatchResult, error)
	Statistics(ctx context.Context) (domain.ReviewStats, error)
	ExportApproved(ctx context.Context, in review.ExportInput) (review.Export, error)
}

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// ReviewHandler serves the lesson moderation endpoints. Callers must already
// be authorized as reviewers.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		svc: svc,
		log: logger.With("handler", "review"),
	}
}

type listResponse struct {
	Lessons []review.LessonView `json:"lessons"`
	Count   int                 `json:"count"`
}

type notesRequest struct {
	Notes string `json:"notes"`
}

type batchApproveRequest struct {
	IDs []string `json:"ids"`
}

type batchApproveResponse struct {
	Success bool `json:"success"`
	review.BatchResult
}

// List returns generated lessons.
// GET /admin/lessons?status=pending&limit=50&offset=0
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := review.ListInput{Status: q.Get("status")}

	var err error
	if in.Limit, err = intParam(q.Get("limit"), "limit"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if in.Offset, err = intParam(q.Get("offset"), "offset"); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	lessons, err := h.svc.List(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Lessons: lessons, Count: len(lessons)})
}

// Get returns one lesson.
// GET /admin/lessons/{id}
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Get)
}

// Approve approves one lesson.
// POST /admin/lessons/{id}/approve
func (h *ReviewHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Approve)
}

// Reject rejects one lesson.
// POST /admin/lessons/{id}/reject
func (h *ReviewHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Reject)
}

func (h *ReviewHandler) decide(w http.ResponseWriter, r *http.Request, fn func(context.Context, int64) (review.LessonView, error)) {
	id, err := review.ParseID(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	lesson, err := fn(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lesson)
}

// UpdateNotes replaces the reviewer notes.
// PUT /admin/lessons/{id}/notes  {"notes": "..."}
func (h *ReviewHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	id, err := review.ParseID(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req notesRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	lesson, err := h.svc.UpdateNotes(r.Context(), id, req.Notes)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lesson)
}

// BatchApprove approves several lessons at once.
// POST /admin/lessons/batch-approve  {"ids": ["1", "2"]}
func (h *ReviewHandler) BatchApprove(w http.ResponseWriter, r *http.Request) {
	var req batchApproveRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	ids, err := review.ParseIDs(req.IDs)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.BatchApprove(r.Context(), ids)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, batchApproveResponse{Success: true, BatchResult: res})
}

// Stats returns counts per review status.
// GET /admin/lessons/stats
func (h *ReviewHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Export downloads approved lessons.
// GET /admin/lessons/export?format=csv&level=1&level=2
func (h *ReviewHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := review.ExportInput{Format: q.Get("format")}
	if in.Format == "" {
		in.Format = review.FormatJSON
	}

	for _, raw := range q["level"] {
		for _, part := range strings.Split(raw, ",") {
			level, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				writeError(w, http.StatusBadRequest, "level must be an integer")
				return
			}
			in.Levels = append(in.Levels, level)
		}
	}

	out, err := h.svc.ExportApproved(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", out.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+out.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Body)
}

func (h *ReviewHandler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func intParam(v, field string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.NewValidationError(field, "must be an integer")
	}
	return n, nil
}

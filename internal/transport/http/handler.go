// Package httptransport is the thin HTTP layer over the ingest service. It
// decodes webhook payloads and delegates; placement logic stays out of here.
package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"rosterd/internal/ingest"
	"rosterd/internal/secrets"
	"rosterd/pkg/requestcontext"
)

// Service is what the transport needs from the ingest layer.
type Service interface {
	Process(ctx context.Context, sub ingest.Submission) error
	ProcessBatch(ctx context.Context, subs []ingest.Submission) int
}

// Handler handles submission webhooks and operational endpoints.
type Handler struct {
	logger            *slog.Logger
	svc               Service
	webhookSecretHash string
}

// New creates a Handler. An empty webhookSecretHash disables the shared
// secret check, which is only acceptable in local development.
func New(svc Service, webhookSecretHash string, logger *slog.Logger) *Handler {
	return &Handler{
		logger:            logger,
		svc:               svc,
		webhookSecretHash: webhookSecretHash,
	}
}

// handleSubmission accepts one form submission from the webhook and runs it
// through the ingest pipeline.
func (h *Handler) handleSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.webhookSecretHash != "" {
		presented := r.Header.Get("X-Webhook-Secret")
		if err := secrets.Verify(presented, h.webhookSecretHash); err != nil {
			h.logger.WarnContext(ctx, "webhook secret rejected",
				"request_id", requestcontext.RequestID(ctx),
				"client_ip", requestcontext.ClientIP(ctx),
			)
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error": "unauthorized",
			})
			return
		}
	}

	var sub ingest.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		h.logger.WarnContext(ctx, "invalid submission payload",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
		return
	}
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}

	if err := h.svc.Process(ctx, sub); err != nil {
		h.logger.ErrorContext(ctx, "submission processing failed",
			"request_id", requestcontext.RequestID(ctx),
			"submission_id", sub.ID,
			"error", err.Error(),
		)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "processing failed",
		})
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{
		"status": "accepted",
		"id":     sub.ID,
	})
}

// handleResync replays a batch of submissions, typically exported from the
// form platform after an outage. Admin-only.
func (h *Handler) handleResync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var subs []ingest.Submission
	if err := json.NewDecoder(r.Body).Decode(&subs); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
		return
	}
	for i := range subs {
		if subs[i].ID == "" {
			subs[i].ID = uuid.NewString()
		}
	}

	failed := h.svc.ProcessBatch(ctx, subs)
	h.logger.InfoContext(ctx, "resync completed",
		"request_id", requestcontext.RequestID(ctx),
		"total", len(subs),
		"failed", failed,
	)
	writeJSON(w, http.StatusOK, map[string]int{
		"processed": len(subs) - failed,
		"failed":    failed,
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Package ingest orchestrates one submission through normalization,
// directory placement, and contact mirroring.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"rosterd/internal/contacts"
	"rosterd/internal/dedupe"
	"rosterd/internal/directory"
	"rosterd/internal/domain"
	"rosterd/internal/events"
	"rosterd/internal/platform/metrics"
	"rosterd/internal/record"
	"rosterd/pkg/email"
	"rosterd/pkg/text"
)

// Submission is one decoded form response: an ID assigned by the form
// platform and the ordered raw answer tuple.
type Submission struct {
	ID      string   `json:"id"`
	Answers []string `json:"answers"`
}

// Deps are the collaborators a Service needs. Guard and Events may be nil
// (disabled); Contacts may be contacts.NopClient.
type Deps struct {
	Builder  *record.Builder
	Writer   *directory.Writer
	Table    directory.Table
	Contacts contacts.Client
	Guard    *dedupe.Guard
	Events   *events.Publisher
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
}

// Service processes submissions one at a time. The host platform that feeds
// submissions serializes deliveries; the mutex re-expresses that guarantee
// in-process so the snapshot-then-write cycle never interleaves.
type Service struct {
	mu     sync.Mutex
	deps   Deps
	tracer trace.Tracer
}

func NewService(deps Deps) *Service {
	return &Service{
		deps:   deps,
		tracer: otel.Tracer("rosterd/ingest"),
	}
}

// Process runs one submission to completion: dedupe check, record build,
// placement and merge, then best-effort contact mirroring and event
// publication. Only directory failures are returned; mirroring and events
// never block placement.
func (s *Service) Process(ctx context.Context, sub Submission) error {
	ctx, span := s.tracer.Start(ctx, "ingest.Process",
		trace.WithAttributes(attribute.String("submission.id", sub.ID)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()

	fresh, err := s.deps.Guard.FirstSeen(ctx, sub.ID)
	if err != nil {
		// A dedupe outage must not drop submissions; resubmissions are
		// already idempotent via the identity index.
		s.deps.Logger.WarnContext(ctx, "dedupe check failed, processing anyway",
			"submission_id", sub.ID, "error", err)
	} else if !fresh {
		s.deps.Metrics.SubmissionsDuplicate.Inc()
		s.deps.Logger.InfoContext(ctx, "duplicate submission suppressed",
			"submission_id", sub.ID)
		return nil
	}

	rec := s.deps.Builder.Build(sub.Answers)

	placement, err := s.deps.Writer.Upsert(ctx, rec, s.deps.Table)
	if err != nil {
		s.deps.Metrics.SubmissionsProcessed.WithLabelValues("error").Inc()
		return fmt.Errorf("place submission %s: %w", sub.ID, err)
	}
	if placement.Op == directory.OpUpdate {
		s.deps.Metrics.RowsUpdated.Inc()
	} else {
		s.deps.Metrics.RowsInserted.Inc()
	}

	s.mirrorContacts(ctx, rec)

	s.deps.Events.Publish(ctx, events.MemberUpserted{
		SubmissionID: sub.ID,
		Name:         rec.Name,
		Email:        rec.Email,
		Team:         rec.Team,
		School:       rec.School,
		Updated:      placement.Op == directory.OpUpdate,
		OccurredAt:   time.Now().UTC(),
	})

	s.deps.Metrics.SubmissionsProcessed.WithLabelValues("ok").Inc()
	s.deps.Metrics.ProcessDuration.Observe(time.Since(start).Seconds())
	s.deps.Logger.InfoContext(ctx, "submission processed",
		"submission_id", sub.ID,
		"name", rec.Name,
		"row", placement.Row,
		"updated", placement.Op == directory.OpUpdate,
	)
	return nil
}

// ProcessBatch replays a batch of submissions in order. Failures are logged
// and counted but do not stop the batch.
func (s *Service) ProcessBatch(ctx context.Context, subs []Submission) (failed int) {
	for _, sub := range subs {
		if err := s.Process(ctx, sub); err != nil {
			s.deps.Logger.ErrorContext(ctx, "batch submission failed",
				"submission_id", sub.ID, "error", err)
			failed++
		}
	}
	return failed
}

// mirrorContacts pushes the member and each guardian to the contact store.
// Every failure here is logged and dropped; the directory row already landed.
func (s *Service) mirrorContacts(ctx context.Context, rec domain.Record) {
	first, last := text.SplitName(rec.Name)
	s.createContact(ctx, first, last, rec.Email, rec.Phone, memberLabels(rec))

	for _, guardian := range rec.GuardianEmails {
		gf, gl := email.DeriveName(guardian)
		s.createContact(ctx, gf, gl, guardian, "", guardianLabels())
	}
}

func (s *Service) createContact(ctx context.Context, first, last, addr, phone string, labels []string) {
	status, err := s.deps.Contacts.CreateContact(ctx, first, last, addr, phone, labels)
	if err != nil {
		s.deps.Metrics.ContactMirrorErrors.Inc()
		s.deps.Logger.ErrorContext(ctx, "contact mirror failed",
			"email", addr, "error", err)
		return
	}
	if !status.OK() {
		s.deps.Metrics.ContactMirrorErrors.Inc()
		s.deps.Logger.WarnContext(ctx, "contact store rejected contact",
			"email", addr, "status", status.Code, "body", status.Body)
	}
}

// memberLabels derives contact labels from the contact team (which
// re-defaults "Unsure" members to Member) and flags leadership roles.
func memberLabels(rec domain.Record) []string {
	var labels []string
	if key, ok := text.NormalizeLabelKey(rec.ContactTeam()); ok {
		labels = append(labels, key)
	}
	if rec.Title != rec.ContactTeam() {
		if key, ok := text.NormalizeLabelKey(rec.Title); ok {
			labels = append(labels, key)
		}
	}
	if text.IsLeadershipTitle(rec.Title) {
		if key, ok := text.NormalizeLabelKey("Leadership"); ok {
			labels = append(labels, key)
		}
	}
	return labels
}

func guardianLabels() []string {
	key, _ := text.NormalizeLabelKey(domain.GuardianLabel)
	return []string{key}
}

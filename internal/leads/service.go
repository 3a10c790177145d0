package leads

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/skillupx/lead-intake/internal/notify"
	"github.com/skillupx/lead-intake/internal/observability/metrics"
	"github.com/skillupx/lead-intake/pkg/logging"
)

var intakeTracer = otel.Tracer("lead-intake.internal.leads")

// RowAppender appends one row to the lead spreadsheet.
type RowAppender interface {
	AppendRow(ctx context.Context, row []string) error
}

// Notifier sends the new-lead email.
type Notifier interface {
	NotifyNewLead(ctx context.Context, notice notify.LeadNotice) error
}

// ServiceConfig wires the collaborators. Everything here is read-only after startup.
type ServiceConfig struct {
	Sheet    RowAppender
	Notifier Notifier
	Location *time.Location
	Now      func() time.Time
	Metrics  *metrics.LeadMetrics
	Logger   *logging.Logger
}

// Service validates a submission, appends it to the sheet and then emails it.
type Service struct {
	sheet    RowAppender
	notifier Notifier
	loc      *time.Location
	now      func() time.Time
	metrics  *metrics.LeadMetrics
	logger   *logging.Logger
}

// NewService creates the intake service.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Sheet == nil || cfg.Notifier == nil {
		panic("leads: sheet appender and notifier required")
	}
	if cfg.Location == nil {
		cfg.Location = istFixed
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &Service{
		sheet:    cfg.Sheet,
		notifier: cfg.Notifier,
		loc:      cfg.Location,
		now:      cfg.Now,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
	}
}

// Submit runs the intake. The append must succeed before the email is
// attempted; a failure in either is returned as *DownstreamError.
func (s *Service) Submit(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, span := intakeTracer.Start(ctx, "leads.submit")
	defer span.End()

	lead := &Lead{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Subjects:    req.SubjectsOrDefault(),
		SubmittedAt: FormatSubmittedAt(s.now(), s.loc),
	}
	span.SetAttributes(attribute.String("lead.submitted_at", lead.SubmittedAt))

	if err := s.call(ctx, StageSheetAppend, func(ctx context.Context) error {
		return s.sheet.AppendRow(ctx, lead.Row())
	}); err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := s.call(ctx, StageEmailSend, func(ctx context.Context) error {
		return s.notifier.NotifyNewLead(ctx, notify.LeadNotice{
			Name:        lead.Name,
			Email:       lead.Email,
			Phone:       lead.Phone,
			Subjects:    lead.Subjects,
			SubmittedAt: lead.SubmittedAt,
		})
	}); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return lead, nil
}

func (s *Service) call(ctx context.Context, stage string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	s.metrics.ObserveCollaborator(stage, err, time.Since(start).Seconds())
	if err == nil {
		return nil
	}
	var downstream *DownstreamError
	if errors.As(err, &downstream) {
		return err
	}
	return &DownstreamError{Stage: stage, Err: err}
}

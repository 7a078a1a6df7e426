// Package service runs sensor packages through the workout model and
// writes one report line per package.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/okian/ftracker/internal/domain/model"
	"github.com/okian/ftracker/internal/domain/workout"
	"github.com/okian/ftracker/pkg/logger"
	"github.com/okian/ftracker/pkg/metrics"
)

// Error kinds used as metric labels.
const (
	kindUnknownActivity  = "unknown_activity"
	kindArityMismatch    = "arity_mismatch"
	kindInvalidParameter = "invalid_parameter"
	kindDomain           = "domain"
	kindOther            = "other"
)

// Service builds workouts from packages and reports on them.
type Service struct {
	logger  logger.Logger
	metrics *metrics.Manager
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager. Defaults to the process-wide one.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// New constructs a Service.
func New(opts ...Option) *Service {
	s := &Service{
		metrics: metrics.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats describes one Run.
type Stats struct {
	RunID     string
	Packages  int
	Processed int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// DefaultPackages returns the built-in sample readings.
func DefaultPackages() []model.Package {
	return []model.Package{
		{Code: workout.CodeSwimming, Data: []any{720, 1, 80, 25, 40}},
		{Code: workout.CodeRunning, Data: []any{15000, 1, 75}},
		{Code: workout.CodeWalking, Data: []any{9000, 1, 75, 180}},
	}
}

func (s *Service) log() logger.Logger {
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s.logger
}

// Process builds the workout described by pkg and returns its summary.
func (s *Service) Process(ctx context.Context, pkg model.Package) (model.Summary, error) {
	w, err := workout.Build(pkg.Code, pkg.Data)
	if err != nil {
		kind := errorKind(err)
		s.metrics.RecordError(kind)
		s.log().Warn(ctx, "package rejected",
			logger.String("code", pkg.Code),
			logger.String("kind", kind),
			logger.Error(err))
		return model.Summary{}, err
	}

	summary := workout.Summarize(w)
	s.metrics.RecordWorkout(summary.TrainingType(), summary.Distance(), summary.Calories())
	s.log().Debug(ctx, "workout summarised",
		logger.String("code", pkg.Code),
		logger.String("trainingType", summary.TrainingType()),
		logger.Float64("distance", summary.Distance()),
		logger.Float64("speed", summary.Speed()),
		logger.Float64("calories", summary.Calories()))
	return summary, nil
}

// Run processes pkgs in order and writes each summary line to out.
// It stops at the first failing package; lines already written stay.
func (s *Service) Run(ctx context.Context, pkgs []model.Package, out io.Writer) (Stats, error) {
	stats := Stats{
		RunID:     uuid.NewString(),
		Packages:  len(pkgs),
		StartTime: time.Now(),
	}
	log := s.log().With(logger.String("runID", stats.RunID))
	s.metrics.SetRunPackages(len(pkgs))

	log.Info(ctx, "run started", logger.Int("packages", len(pkgs)))

	finish := func() {
		stats.EndTime = time.Now()
		stats.Duration = stats.EndTime.Sub(stats.StartTime)
	}

	for i, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			finish()
			return stats, fmt.Errorf("run cancelled before package %d: %w", i, err)
		}

		summary, err := s.Process(ctx, pkg)
		if err != nil {
			finish()
			log.Error(ctx, "run aborted", logger.Int("index", i), logger.Error(err))
			return stats, fmt.Errorf("package %d: %w", i, err)
		}

		if _, err := fmt.Fprintln(out, summary.Message()); err != nil {
			finish()
			return stats, fmt.Errorf("write report for package %d: %w", i, err)
		}
		stats.Processed++
	}

	finish()
	log.Info(ctx, "run finished",
		logger.Int("packages", stats.Packages),
		logger.Int("processed", stats.Processed),
		logger.String("duration", stats.Duration.String()))
	return stats, nil
}

// errorKind maps a Build error onto a metric label.
func errorKind(err error) string {
	switch {
	case errors.Is(err, workout.ErrUnknownActivity):
		return kindUnknownActivity
	case errors.Is(err, workout.ErrArityMismatch):
		return kindArityMismatch
	case errors.Is(err, workout.ErrInvalidParameter):
		return kindInvalidParameter
	case errors.Is(err, workout.ErrNonPositiveDuration), errors.Is(err, workout.ErrNonPositiveHeight):
		return kindDomain
	default:
		return kindOther
	}
}

// Package metrics provides Prometheus metrics for workout processing.
package metrics

import (
	"fmt"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label names.
const (
	labelActivity = "activity"
	labelKind     = "kind"
)

// Default histogram buckets.
//
//nolint:gochecknoglobals // read-only defaults
var (
	defaultCaloriesBuckets = []float64{50, 100, 200, 300, 500, 750, 1000, 1500, 2000}
	defaultDistanceBuckets = []float64{0.5, 1, 2, 5, 10, 21.1, 42.2}
)

// Manager owns the workout metrics registered on one registry.
type Manager struct {
	namespace       string
	subsystem       string
	caloriesBuckets []float64
	distanceBuckets []float64
	constLabels     map[string]string
	registry        prometheus.Registerer
	enabled         atomic.Bool

	workoutsProcessed *prometheus.CounterVec
	workoutErrors     *prometheus.CounterVec
	calories          *prometheus.HistogramVec
	distance          *prometheus.HistogramVec
	lastRunPackages   prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:       "ftracker",
		subsystem:       "workout",
		caloriesBuckets: defaultCaloriesBuckets,
		distanceBuckets: defaultDistanceBuckets,
		constLabels:     make(map[string]string),
		registry:        prometheus.DefaultRegisterer,
	}
	m.enabled.Store(true)

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.workoutsProcessed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "processed_total",
		Help:        "Total number of workouts summarised, by activity",
		ConstLabels: m.constLabels,
	}, []string{labelActivity})

	m.workoutErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_total",
		Help:        "Total number of rejected packages, by error kind",
		ConstLabels: m.constLabels,
	}, []string{labelKind})

	m.calories = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "calories_kcal",
		Help:        "Distribution of calories spent per workout",
		Buckets:     m.caloriesBuckets,
		ConstLabels: m.constLabels,
	}, []string{labelActivity})

	m.distance = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "distance_km",
		Help:        "Distribution of distance covered per workout",
		Buckets:     m.distanceBuckets,
		ConstLabels: m.constLabels,
	}, []string{labelActivity})

	m.lastRunPackages = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "last_run_packages",
		Help:        "Number of packages submitted to the most recent run",
		ConstLabels: m.constLabels,
	})
}

// SetEnabled toggles recording. Disabled managers drop observations.
func (m *Manager) SetEnabled(enabled bool) { m.enabled.Store(enabled) }

// Enabled reports whether observations are recorded.
func (m *Manager) Enabled() bool { return m.enabled.Load() }

// RecordWorkout counts one summarised workout and observes its results.
func (m *Manager) RecordWorkout(activity string, distanceKm, calories float64) {
	if !m.Enabled() {
		return
	}
	m.workoutsProcessed.WithLabelValues(activity).Inc()
	m.distance.WithLabelValues(activity).Observe(distanceKm)
	m.calories.WithLabelValues(activity).Observe(calories)
}

// RecordError counts one rejected package.
func (m *Manager) RecordError(kind string) {
	if !m.Enabled() {
		return
	}
	m.workoutErrors.WithLabelValues(kind).Inc()
}

// SetRunPackages records how many packages the current run received.
func (m *Manager) SetRunPackages(n int) {
	if !m.Enabled() {
		return
	}
	m.lastRunPackages.Set(float64(n))
}

// Global helpers delegating to the default manager.

// Default returns the process-wide manager.
func Default() *Manager { return globalManager }

// SetEnabled toggles recording on the default manager.
func SetEnabled(enabled bool) { globalManager.SetEnabled(enabled) }

// RecordWorkout records a workout on the default manager.
func RecordWorkout(activity string, distanceKm, calories float64) {
	globalManager.RecordWorkout(activity, distanceKm, calories)
}

// RecordError records a rejected package on the default manager.
func RecordError(kind string) { globalManager.RecordError(kind) }

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile writes everything gathered by g to path in the Prometheus
// text format, suitable for the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if g == nil {
		g = customRegistry
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}
	return nil
}

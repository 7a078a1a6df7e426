package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given a manager built with custom options", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(
			WithNamespace("test"),
			WithSubsystem("unit"),
			WithCaloriesBuckets([]float64{100, 500}),
			WithDistanceBuckets([]float64{1, 10}),
			WithConstLabels(map[string]string{"env": "test"}),
			WithPrometheusRegistry(registry),
		)

		Convey("Then its collectors use the configured names", func() {
			m.RecordWorkout("Running", 9.75, 652.125)

			families, err := registry.Gather()
			So(err, ShouldBeNil)
			names := make([]string, 0, len(families))
			for _, f := range families {
				names = append(names, f.GetName())
			}
			So(names, ShouldContain, "test_unit_processed_total")
			So(names, ShouldContain, "test_unit_calories_kcal")
			So(names, ShouldContain, "test_unit_distance_km")
		})

		Convey("And constant labels are attached", func() {
			m.RecordError("unknown_activity")
			expected := `
# HELP test_unit_errors_total Total number of rejected packages, by error kind
# TYPE test_unit_errors_total counter
test_unit_errors_total{env="test",kind="unknown_activity"} 1
`
			So(testutil.GatherAndCompare(registry, strings.NewReader(expected), "test_unit_errors_total"), ShouldBeNil)
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given a manager on a fresh registry", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(WithPrometheusRegistry(registry))

		Convey("When recording workouts", func() {
			m.RecordWorkout("Running", 9.75, 652.125)
			m.RecordWorkout("Running", 5, 300)
			m.RecordWorkout("Swimming", 0.99, 336)

			Convey("Then the per-activity counters increase", func() {
				So(testutil.ToFloat64(m.workoutsProcessed.WithLabelValues("Running")), ShouldEqual, 2)
				So(testutil.ToFloat64(m.workoutsProcessed.WithLabelValues("Swimming")), ShouldEqual, 1)
			})

			Convey("And the histograms observe each workout", func() {
				So(testutil.CollectAndCount(m.calories), ShouldEqual, 2)
				So(testutil.CollectAndCount(m.distance), ShouldEqual, 2)
			})
		})

		Convey("When recording errors and run size", func() {
			m.RecordError("arity_mismatch")
			m.RecordError("arity_mismatch")
			m.SetRunPackages(3)

			Convey("Then they are reflected in the collectors", func() {
				So(testutil.ToFloat64(m.workoutErrors.WithLabelValues("arity_mismatch")), ShouldEqual, 2)
				So(testutil.ToFloat64(m.lastRunPackages), ShouldEqual, 3)
			})
		})

		Convey("When the manager is disabled", func() {
			m.SetEnabled(false)
			m.RecordWorkout("Running", 9.75, 652.125)
			m.RecordError("unknown_activity")
			m.SetRunPackages(7)

			Convey("Then nothing is recorded", func() {
				So(m.Enabled(), ShouldBeFalse)
				So(testutil.ToFloat64(m.workoutsProcessed.WithLabelValues("Running")), ShouldEqual, 0)
				So(testutil.ToFloat64(m.workoutErrors.WithLabelValues("unknown_activity")), ShouldEqual, 0)
				So(testutil.ToFloat64(m.lastRunPackages), ShouldEqual, 0)
			})
		})

		Convey("When created disabled through options", func() {
			off := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()), WithMetricsEnabled(false))

			Convey("Then it reports disabled", func() {
				So(off.Enabled(), ShouldBeFalse)
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the default manager", t, func() {
		Convey("Then the package helpers do not panic", func() {
			So(func() {
				RecordWorkout("SportsWalking", 5.85, 157.5)
				RecordError("invalid_parameter")
			}, ShouldNotPanic)
			So(Default(), ShouldNotBeNil)
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}

func TestWriteTextfile(t *testing.T) {
	Convey("Given a registry with one workout", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(WithPrometheusRegistry(registry))
		m.RecordWorkout("Swimming", 0.9936, 336)
		path := filepath.Join(t.TempDir(), "ftracker.prom")

		Convey("When writing the textfile", func() {
			err := WriteTextfile(path, registry)

			Convey("Then the file contains the counters", func() {
				So(err, ShouldBeNil)
				data, readErr := os.ReadFile(path)
				So(readErr, ShouldBeNil)
				So(string(data), ShouldContainSubstring, `ftracker_workout_processed_total{activity="Swimming"} 1`)
			})
		})

		Convey("When the directory does not exist", func() {
			err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"), registry)

			Convey("Then ErrWriteFailed is returned", func() {
				So(errors.Is(err, ErrWriteFailed), ShouldBeTrue)
			})
		})
	})
}

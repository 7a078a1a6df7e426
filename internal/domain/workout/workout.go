// Package workout turns raw sensor readings into distance, speed and
// calorie estimates for the supported activity types.
package workout

import (
	"fmt"

	"github.com/okian/ftracker/internal/domain/model"
)

// Unit conversion constants.
const (
	MInKm  = 1000 // metres per kilometre
	MinInH = 60   // minutes per hour
)

// Step lengths in metres per action.
const (
	LenStep     = 0.65 // one step on land
	SwimLenStep = 1.38 // one swimming stroke
)

// Workout is the contract every activity type satisfies.
type Workout interface {
	// Name is the display name used in reports.
	Name() string
	// Duration returns the workout length in hours.
	Duration() float64
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the average speed in km/h.
	MeanSpeed() float64
	// Calories returns the estimated energy spent in kcal.
	Calories() float64
}

// Training holds the readings shared by all activities and the default
// distance and speed formulas. It is meant to be embedded; on its own it
// has no calorie formula.
type Training struct {
	name       string
	action     int
	duration   float64
	weight     float64
	stepLength float64
}

func newTraining(name string, action int, duration, weight, stepLength float64) (Training, error) {
	if duration <= 0 {
		return Training{}, fmt.Errorf("%w: %v", ErrNonPositiveDuration, duration)
	}
	return Training{
		name:       name,
		action:     action,
		duration:   duration,
		weight:     weight,
		stepLength: stepLength,
	}, nil
}

func (t Training) Name() string      { return t.name }
func (t Training) Duration() float64 { return t.duration }
func (t Training) Weight() float64   { return t.weight }
func (t Training) Action() int       { return t.action }

// Distance returns action * stepLength in km.
func (t Training) Distance() float64 {
	return float64(t.action) * t.stepLength / MInKm
}

// MeanSpeed returns Distance over Duration.
func (t Training) MeanSpeed() float64 {
	return t.Distance() / t.duration
}

// Calories panics: concrete workouts provide their own formula.
func (t Training) Calories() float64 {
	panic(fmt.Errorf("%w: Calories on %q", ErrAbstractMethod, t.name))
}

// Summarize computes the report for w.
func Summarize(w Workout) model.Summary {
	return model.NewSummary(w.Name(), w.Duration(), w.Distance(), w.MeanSpeed(), w.Calories())
}

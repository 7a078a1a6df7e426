// Package model contains domain models passed between layers.
package model

import "fmt"

// messageFormat is the fixed layout of a workout report line.
const messageFormat = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// Summary is the computed result of a single workout.
// Values are fixed at construction; use the accessors to read them.
type Summary struct {
	trainingType string  // display name, e.g. "Running"
	duration     float64 // hours
	distance     float64 // km
	speed        float64 // km/h
	calories     float64 // kcal
}

// NewSummary creates a Summary from already computed values.
func NewSummary(trainingType string, duration, distance, speed, calories float64) Summary {
	return Summary{
		trainingType: trainingType,
		duration:     duration,
		distance:     distance,
		speed:        speed,
		calories:     calories,
	}
}

func (s Summary) TrainingType() string { return s.trainingType }
func (s Summary) Duration() float64    { return s.duration }
func (s Summary) Distance() float64    { return s.distance }
func (s Summary) Speed() float64       { return s.speed }
func (s Summary) Calories() float64    { return s.calories }

// Message renders the summary as a single human-readable line.
func (s Summary) Message() string {
	return fmt.Sprintf(messageFormat, s.trainingType, s.duration, s.distance, s.speed, s.calories)
}

// String implements fmt.Stringer.
func (s Summary) String() string { return s.Message() }

package workout

// Running calorie coefficients.
const (
	runSpeedMultiplier = 18
	runSpeedShift      = 20
)

// Running is a run measured in steps.
type Running struct {
	Training
}

// NewRunning creates a Running workout.
func NewRunning(action int, duration, weight float64) (*Running, error) {
	t, err := newTraining("Running", action, duration, weight, LenStep)
	if err != nil {
		return nil, err
	}
	return &Running{Training: t}, nil
}

// Calories returns (18*speed - 20) * weight * minutes / 1000.
func (r *Running) Calories() float64 {
	return (runSpeedMultiplier*r.MeanSpeed() - runSpeedShift) *
		r.weight * r.duration * MinInH / MInKm
}

package workout

// Swimming calorie coefficients.
const (
	swimSpeedShift       = 1.1
	swimWeightMultiplier = 2
)

// Swimming is a pool swim. Distance counts strokes, speed counts laps.
type Swimming struct {
	Training
	lengthPool float64 // m
	countPool  int
}

// NewSwimming creates a Swimming workout.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) (*Swimming, error) {
	t, err := newTraining("Swimming", action, duration, weight, SwimLenStep)
	if err != nil {
		return nil, err
	}
	return &Swimming{Training: t, lengthPool: lengthPool, countPool: countPool}, nil
}

func (s *Swimming) LengthPool() float64 { return s.lengthPool }
func (s *Swimming) CountPool() int      { return s.countPool }

// MeanSpeed returns the swum pool distance over duration in km/h.
func (s *Swimming) MeanSpeed() float64 {
	return s.lengthPool * float64(s.countPool) / MInKm / s.duration
}

// Calories returns (speed + 1.1) * 2 * weight.
func (s *Swimming) Calories() float64 {
	return (s.MeanSpeed() + swimSpeedShift) * swimWeightMultiplier * s.weight
}

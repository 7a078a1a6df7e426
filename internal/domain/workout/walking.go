package workout

import (
	"fmt"
	"math"
)

// Walking calorie coefficients.
const (
	walkWeightMultiplier      = 0.035
	walkSpeedHeightMultiplier = 0.029
)

// SportsWalking is race walking; the calorie formula also depends on height.
type SportsWalking struct {
	Training
	height float64 // cm
}

// NewSportsWalking creates a SportsWalking workout.
func NewSportsWalking(action int, duration, weight, height float64) (*SportsWalking, error) {
	if height <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrNonPositiveHeight, height)
	}
	t, err := newTraining("SportsWalking", action, duration, weight, LenStep)
	if err != nil {
		return nil, err
	}
	return &SportsWalking{Training: t, height: height}, nil
}

func (w *SportsWalking) Height() float64 { return w.height }

// Calories uses the floored ratio speed²/height, so small speeds contribute
// only the weight term.
func (w *SportsWalking) Calories() float64 {
	speed := w.MeanSpeed()
	ratio := math.Floor(speed * speed / w.height)
	return (walkWeightMultiplier*w.weight + walkSpeedHeightMultiplier*w.weight*ratio) *
		w.duration * MinInH
}

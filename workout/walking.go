package workout

import "math"

const (
	walkCaloriesWeightMultiplier = 0.035
	walkCaloriesSpeedMultiplier  = 0.029
)

// SportsWalking is a race-walking session measured in steps
type SportsWalking struct {
	Training
	Height float64
}

// NewSportsWalking creates a walking session; duration must be positive
func NewSportsWalking(action int, duration, weight, height float64) (*SportsWalking, error) {
	t, err := newTraining(action, duration, weight)
	if err != nil {
		return nil, err
	}
	return &SportsWalking{Training: t, Height: height}, nil
}

func (w *SportsWalking) Kind() Kind { return KindSportsWalking }

func (w *SportsWalking) Distance() float64 {
	return distance(w.Action, LenStep)
}

func (w *SportsWalking) MeanSpeed() float64 {
	return meanSpeed(w.Distance(), w.Duration)
}

// SpentCalories floors speed²/height before weighting it
func (w *SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	speedByHeight := math.Floor(speed * speed / w.Height)
	return (walkCaloriesWeightMultiplier*w.Weight +
		speedByHeight*walkCaloriesSpeedMultiplier*w.Weight) * w.durationInMinutes()
}

var _ Workout = (*SportsWalking)(nil)

package workout

const (
	swimCaloriesSpeedShift       = 1.1
	swimCaloriesWeightMultiplier = 2
)

// Swimming is a pool session measured in strokes
type Swimming struct {
	Training
	PoolLength float64 // metres
	PoolLaps   float64
}

// NewSwimming creates a pool session; duration must be positive
func NewSwimming(action int, duration, weight, poolLength, poolLaps float64) (*Swimming, error) {
	t, err := newTraining(action, duration, weight)
	if err != nil {
		return nil, err
	}
	return &Swimming{Training: t, PoolLength: poolLength, PoolLaps: poolLaps}, nil
}

func (s *Swimming) Kind() Kind { return KindSwimming }

func (s *Swimming) Distance() float64 {
	return distance(s.Action, SwimmingLenStep)
}

// MeanSpeed is derived from the laps swum, not from the stroke count
func (s *Swimming) MeanSpeed() float64 {
	return meanSpeed(s.PoolLength*s.PoolLaps/MInKm, s.Duration)
}

func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimCaloriesSpeedShift) * swimCaloriesWeightMultiplier * s.Weight
}

var _ Workout = (*Swimming)(nil)

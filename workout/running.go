package workout

const (
	runCaloriesSpeedMultiplier = 18
	runCaloriesSpeedShift      = 20
)

// Running is a running session measured in steps
type Running struct {
	Training
}

// NewRunning creates a running session; duration must be positive
func NewRunning(action int, duration, weight float64) (*Running, error) {
	t, err := newTraining(action, duration, weight)
	if err != nil {
		return nil, err
	}
	return &Running{Training: t}, nil
}

func (r *Running) Kind() Kind { return KindRunning }

func (r *Running) Distance() float64 {
	return distance(r.Action, LenStep)
}

func (r *Running) MeanSpeed() float64 {
	return meanSpeed(r.Distance(), r.Duration)
}

func (r *Running) SpentCalories() float64 {
	coef := runCaloriesSpeedMultiplier*r.MeanSpeed() - runCaloriesSpeedShift
	return coef * r.Weight / MInKm * r.durationInMinutes()
}

var _ Workout = (*Running)(nil)

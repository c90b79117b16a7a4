// Package workout derives distance, mean speed and spent calories from raw
// fitness-tracker readings for the supported training kinds.
package workout

const (
	// LenStep is the distance covered by one step, in metres
	LenStep = 0.65
	// SwimmingLenStep is the distance covered by one stroke, in metres
	SwimmingLenStep = 1.38
	// MInKm is the number of metres in a kilometre
	MInKm = 1000
	// MinInH is the number of minutes in an hour
	MinInH = 60
)

// Kind identifies a training variant
type Kind int

const (
	KindRunning Kind = iota
	KindSportsWalking
	KindSwimming
)

// String returns the training label used in summaries
func (k Kind) String() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindSportsWalking:
		return "SportsWalking"
	case KindSwimming:
		return "Swimming"
	default:
		return "Unknown"
	}
}

// Workout is the calculation contract every training variant implements
type Workout interface {
	// Kind returns the variant of the training
	Kind() Kind

	// Hours returns the session duration in hours
	Hours() float64

	// Distance returns the covered distance in km
	Distance() float64

	// MeanSpeed returns the average speed over the whole session in km/h
	MeanSpeed() float64

	// SpentCalories returns the energy spent in kcal
	SpentCalories() float64
}

// Training holds the readings shared by every variant
type Training struct {
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg
}

func newTraining(action int, duration, weight float64) (Training, error) {
	if !(duration > 0) {
		return Training{}, &InvalidDurationError{Duration: duration}
	}
	return Training{Action: action, Duration: duration, Weight: weight}, nil
}

// distance converts an action count into kilometres for the given step length
func distance(action int, lenStep float64) float64 {
	return float64(action) * lenStep / MInKm
}

// meanSpeed returns km/h for a distance covered over duration hours
func meanSpeed(distanceKm, duration float64) float64 {
	return distanceKm / duration
}

// Hours returns the session duration in hours
func (t Training) Hours() float64 {
	return t.Duration
}

// durationInMinutes converts session hours to minutes
func (t Training) durationInMinutes() float64 {
	return t.Duration * MinInH
}

// Summarize collects the computed values of w into a Summary
func Summarize(w Workout) Summary {
	return Summary{
		TrainingType: w.Kind().String(),
		Duration:     w.Hours(),
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.SpentCalories(),
	}
}

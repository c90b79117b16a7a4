package workout

import (
	"fmt"
	"math"
)

// Summary is the final computed record of a training session
type Summary struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

const messageFormat = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// Message renders the summary as a single line with three decimals per value
func (s Summary) Message() string {
	return fmt.Sprintf(messageFormat, s.TrainingType, s.Duration, s.Distance, s.Speed, s.Calories)
}

// FormatTraining computes and renders w in one step
func FormatTraining(w Workout) string {
	return Summarize(w).Message()
}

// CheckFinite returns a *NonFiniteResultError for the first field that is
// infinite or NaN
func (s Summary) CheckFinite() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"duration", s.Duration},
		{"distance", s.Distance},
		{"speed", s.Speed},
		{"calories", s.Calories},
	}
	for _, f := range fields {
		if math.IsInf(f.value, 0) || math.IsNaN(f.value) {
			return &NonFiniteResultError{Field: f.name, Value: f.value}
		}
	}
	return nil
}

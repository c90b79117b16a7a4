package workout

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryMessage(t *testing.T) {
	tests := []struct {
		name     string
		summary  Summary
		expected string
	}{
		{
			name:     "whole numbers get three decimals",
			summary:  Summary{TrainingType: "Running", Duration: 1, Distance: 9.75, Speed: 9.75, Calories: 699.75},
			expected: "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
		},
		{
			name:     "long fractions are rounded",
			summary:  Summary{TrainingType: "Swimming", Duration: 1, Distance: 0.9936, Speed: 1, Calories: 336},
			expected: "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
		{
			name:     "zero values",
			summary:  Summary{TrainingType: "SportsWalking"},
			expected: "Тип тренировки: SportsWalking; Длительность: 0.000 ч.; Дистанция: 0.000 км; Ср. скорость: 0.000 км/ч; Потрачено ккал: 0.000.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.summary.Message())
		})
	}
}

func TestMessageThreeDecimalsEverywhere(t *testing.T) {
	number := regexp.MustCompile(`-?\d+\.(\d+)`)
	s := Summary{TrainingType: "Running", Duration: 1.23456789, Distance: 2, Speed: 0.1, Calories: 1234.5678}

	matches := number.FindAllStringSubmatch(s.Message(), -1)
	require.Len(t, matches, 4)
	for _, m := range matches {
		assert.Len(t, m[1], 3, "value %s", m[0])
	}
}

func TestMessageIsIdempotent(t *testing.T) {
	s := Summary{TrainingType: "Swimming", Duration: 0.75, Distance: 1.1, Speed: 1.2, Calories: 300.1}
	assert.Equal(t, s.Message(), s.Message())
}

func TestFormatTrainingReferenceRun(t *testing.T) {
	tests := []struct {
		code     string
		args     []float64
		expected string
	}{
		{"SWM", []float64{720, 1, 80, 25, 40}, "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000."},
		{"RUN", []float64{15000, 1, 75}, "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750."},
		{"WLK", []float64{9000, 1, 75, 180}, "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500."},
	}

	for _, tt := range tests {
		w, err := ReadPackage(tt.code, tt.args)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, FormatTraining(w))
	}
}

func TestSummaryCheckFinite(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		field   string
	}{
		{"finite", Summary{Duration: 1, Distance: 2, Speed: 2, Calories: 100}, ""},
		{"infinite calories", Summary{Duration: 1, Distance: 2, Speed: 2, Calories: math.Inf(1)}, "calories"},
		{"nan speed", Summary{Duration: 1, Distance: 2, Speed: math.NaN(), Calories: 1}, "speed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.summary.CheckFinite()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var nonFinite *NonFiniteResultError
			require.ErrorAs(t, err, &nonFinite)
			assert.Equal(t, tt.field, nonFinite.Field)
			assert.ErrorIs(t, err, ErrNonFiniteResult)
		})
	}
}

func TestZeroHeightWalkingIsNotFinite(t *testing.T) {
	w, err := ReadPackage("WLK", []float64{9000, 1, 75, 0})
	require.NoError(t, err)
	assert.ErrorIs(t, Summarize(w).CheckFinite(), ErrNonFiniteResult)
}

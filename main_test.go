package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LOG_LEVEL", "LOG_FORMAT", "FTRACKER_INPUT"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestRunCLISampleBatch(t *testing.T) {
	setupEnv(t)

	var stdout, stderr bytes.Buffer
	require.NoError(t, runCLI(nil, &stdout, &stderr))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.", lines[0])
	assert.Equal(t, "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.", lines[1])
	assert.Equal(t, "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.", lines[2])
	assert.Equal(t, "Unknown type of workout", lines[3])
}

func TestRunCLIFile(t *testing.T) {
	setupEnv(t)

	path := filepath.Join(t.TempDir(), "records.yaml")
	content := "- type: RUN\n  data: [15000, 1, 75]\n- type: RUN\n  data: [15000, 1]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var stdout, stderr bytes.Buffer
	require.NoError(t, runCLI([]string{"run", path}, &stdout, &stderr))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Тип тренировки: Running;"))
	assert.Equal(t, "Invalid workout data: workout RUN expects 3 arguments, got 2", lines[1])
}

func TestRunCLIInputFromEnv(t *testing.T) {
	setupEnv(t)

	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"type":"SWM","data":[720,1,80,25,40]}]`), 0o600))
	t.Setenv("FTRACKER_INPUT", path)

	var stdout, stderr bytes.Buffer
	require.NoError(t, runCLI(nil, &stdout, &stderr))
	assert.Equal(t, 1, strings.Count(stdout.String(), "\n"))
	assert.Contains(t, stdout.String(), "Swimming")
}

func TestRunCLICommands(t *testing.T) {
	setupEnv(t)

	tests := []struct {
		args     []string
		contains string
		wantErr  bool
	}{
		{[]string{"help"}, "Usage: ftracker", false},
		{[]string{"--version"}, "ftracker v0.1.0", false},
		{[]string{"types"}, "WLK\t4 arguments", false},
		{[]string{"run"}, "", true},
		{[]string{"run", "/does/not/exist.json"}, "", true},
		{[]string{"bogus"}, "", true},
	}

	for _, tt := range tests {
		var stdout, stderr bytes.Buffer
		err := runCLI(tt.args, &stdout, &stderr)
		if tt.wantErr {
			assert.Error(t, err, "args %v", tt.args)
			continue
		}
		require.NoError(t, err, "args %v", tt.args)
		assert.Contains(t, stdout.String(), tt.contains)
	}
}

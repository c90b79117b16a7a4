// Package batch runs workout records through the calculator in input order.
package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record is one raw tracker package: a workout code and its positional readings
type Record struct {
	Type string    `json:"type" yaml:"type"`
	Data []float64 `json:"data" yaml:"data"`
}

// SampleRecords returns the reference packages, including one unknown code
func SampleRecords() []Record {
	return []Record{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
		{Type: "ERR", Data: []float64{0, 0, 0, 0}},
	}
}

// LoadRecords reads records from a .json, .yaml or .yml file
func LoadRecords(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(f)
	case ".json", "":
		return DecodeJSON(f)
	default:
		return nil, fmt.Errorf("unsupported records file %q: want .json, .yaml or .yml", path)
	}
}

// DecodeJSON reads a JSON array of records
func DecodeJSON(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode json records: %w", err)
	}
	return records, nil
}

// DecodeYAML reads a YAML sequence of records
func DecodeYAML(r io.Reader) ([]Record, error) {
	var records []Record
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode yaml records: %w", err)
	}
	return records, nil
}

package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/briangreenhill/ftracker/internal/observability"
	"github.com/briangreenhill/ftracker/workout"
)

// UnknownTypeMessage is printed instead of a summary for unrecognized codes
const UnknownTypeMessage = "Unknown type of workout"

// Result is the outcome of one record: exactly one of Summary and Err is set
type Result struct {
	Index   int
	Record  Record
	Summary *workout.Summary
	Err     error
}

// Line renders the result as the single output line for its record
func (r Result) Line() string {
	switch {
	case r.Err == nil:
		return r.Summary.Message()
	case errors.Is(r.Err, workout.ErrUnknownWorkoutType):
		return UnknownTypeMessage
	default:
		return fmt.Sprintf("Invalid workout data: %v", r.Err)
	}
}

// Reader builds a workout from a record's code and readings
type Reader interface {
	Read(code string, args []float64) (workout.Workout, error)
}

// Processor summarizes records one at a time
type Processor struct {
	reader Reader
	logger zerolog.Logger
}

// NewProcessor creates a processor reading workouts through reader
func NewProcessor(reader Reader, logger zerolog.Logger) *Processor {
	return &Processor{reader: reader, logger: logger}
}

// ProcessRecord summarizes a single record
func (p *Processor) ProcessRecord(index int, rec Record) Result {
	res := Result{Index: index, Record: rec}

	w, err := p.reader.Read(rec.Type, rec.Data)
	var summary workout.Summary
	if err == nil {
		summary = workout.Summarize(w)
		err = summary.CheckFinite()
	}
	if err != nil {
		res.Err = err
		observability.RecordFailed(failureReason(err))
		p.logger.Warn().
			Err(err).
			Int("index", index).
			Str("code", rec.Type).
			Int("args", len(rec.Data)).
			Msg("record skipped")
		return res
	}

	res.Summary = &summary
	observability.RecordProcessed(rec.Type)
	p.logger.Debug().
		Int("index", index).
		Str("code", rec.Type).
		Float64("calories", summary.Calories).
		Msg("record summarized")
	return res
}

// Process summarizes records in input order. It stops early, returning the
// results gathered so far, when ctx is cancelled.
func (p *Processor) Process(ctx context.Context, records []Record) ([]Result, error) {
	results := make([]Result, 0, len(records))
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("batch interrupted after %d records: %w", i, err)
		}
		results = append(results, p.ProcessRecord(i, rec))
	}
	return results, nil
}

// Run processes records and writes one line per record to w. Record failures
// are written as lines; only cancellation and write errors are returned.
func (p *Processor) Run(ctx context.Context, records []Record, w io.Writer) error {
	runID := uuid.New()
	logger := p.logger.With().Str("run_id", runID.String()).Logger()
	start := time.Now()

	results, procErr := p.Process(ctx, records)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
		if _, err := fmt.Fprintln(w, res.Line()); err != nil {
			return fmt.Errorf("write result %d: %w", res.Index, err)
		}
	}
	if procErr != nil {
		return procErr
	}

	logger.Info().
		Int("records", len(records)).
		Int("failed", failed).
		Dur("duration", time.Since(start)).
		Msg("batch complete")
	return nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, workout.ErrUnknownWorkoutType):
		return observability.ReasonUnknownType
	case errors.Is(err, workout.ErrArgumentArity):
		return observability.ReasonArity
	case errors.Is(err, workout.ErrInvalidDuration):
		return observability.ReasonInvalidDuration
	case errors.Is(err, workout.ErrInvalidArgument):
		return observability.ReasonInvalidArgument
	case errors.Is(err, workout.ErrNonFiniteResult):
		return observability.ReasonNonFinite
	default:
		return observability.ReasonOther
	}
}

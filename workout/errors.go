package workout

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	ErrArgumentArity      = errors.New("wrong number of workout arguments")
	ErrInvalidDuration    = errors.New("invalid duration")
	ErrInvalidArgument    = errors.New("invalid workout argument")
	ErrNonFiniteResult    = errors.New("non-finite workout result")
)

// UnknownWorkoutTypeError reports a workout code with no registered variant
type UnknownWorkoutTypeError struct {
	Code string
}

func (e *UnknownWorkoutTypeError) Error() string {
	return fmt.Sprintf("unknown workout type %q", e.Code)
}

func (e *UnknownWorkoutTypeError) Is(target error) bool {
	return target == ErrUnknownWorkoutType
}

// ArgumentArityError reports an argument list whose length does not match the
// variant's constructor
type ArgumentArityError struct {
	Code Code
	Want int
	Got  int
}

func (e *ArgumentArityError) Error() string {
	return fmt.Sprintf("workout %s expects %d arguments, got %d", e.Code, e.Want, e.Got)
}

func (e *ArgumentArityError) Is(target error) bool {
	return target == ErrArgumentArity
}

// InvalidDurationError reports a non-positive session duration
type InvalidDurationError struct {
	Duration float64
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("duration must be positive, got %v", e.Duration)
}

func (e *InvalidDurationError) Is(target error) bool {
	return target == ErrInvalidDuration
}

// InvalidArgumentError reports a reading that cannot be used as given
type InvalidArgumentError struct {
	Name  string
	Value float64
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Name, e.Value)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NonFiniteResultError reports a computed value that is infinite or NaN,
// e.g. walking calories for a zero height
type NonFiniteResultError struct {
	Field string
	Value float64
}

func (e *NonFiniteResultError) Error() string {
	return fmt.Sprintf("%s is not a finite number: %v", e.Field, e.Value)
}

func (e *NonFiniteResultError) Is(target error) bool {
	return target == ErrNonFiniteResult
}

package workout

import (
	"math"
	"sort"
)

// Code is the short workout type sent by the tracker
type Code string

const (
	CodeRunning  Code = "RUN"
	CodeWalking  Code = "WLK"
	CodeSwimming Code = "SWM"
)

// Constructor builds a workout from positional readings. The registry has
// already checked the argument count when it is called.
type Constructor func(args []float64) (Workout, error)

type entry struct {
	arity int
	build Constructor
}

// Registry maps workout codes to variant constructors
type Registry struct {
	entries map[Code]entry
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[Code]entry),
	}
}

// Register adds a constructor taking exactly arity arguments. Registering
// the same code twice replaces the previous constructor.
func (r *Registry) Register(code Code, arity int, build Constructor) {
	r.entries[code] = entry{arity: arity, build: build}
}

// Arity returns the argument count expected for code
func (r *Registry) Arity(code Code) (int, bool) {
	e, exists := r.entries[code]
	return e.arity, exists
}

// Codes returns all registered codes in sorted order
func (r *Registry) Codes() []Code {
	codes := make([]Code, 0, len(r.entries))
	for code := range r.entries {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Read constructs the workout registered for code from args
func (r *Registry) Read(code string, args []float64) (Workout, error) {
	e, exists := r.entries[Code(code)]
	if !exists {
		return nil, &UnknownWorkoutTypeError{Code: code}
	}
	if len(args) != e.arity {
		return nil, &ArgumentArityError{Code: Code(code), Want: e.arity, Got: len(args)}
	}
	return e.build(args)
}

// DefaultRegistry returns a registry holding every supported variant
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, k := range []Kind{KindRunning, KindSportsWalking, KindSwimming} {
		code, arity, build := variant(k)
		r.Register(code, arity, build)
	}
	return r
}

// variant describes how k is read from the tracker. Adding a Kind without a
// case here panics on the first DefaultRegistry call.
func variant(k Kind) (Code, int, Constructor) {
	switch k {
	case KindRunning:
		return CodeRunning, 3, func(args []float64) (Workout, error) {
			action, err := actionCount(args[0])
			if err != nil {
				return nil, err
			}
			r, err := NewRunning(action, args[1], args[2])
			if err != nil {
				return nil, err
			}
			return r, nil
		}
	case KindSportsWalking:
		return CodeWalking, 4, func(args []float64) (Workout, error) {
			action, err := actionCount(args[0])
			if err != nil {
				return nil, err
			}
			w, err := NewSportsWalking(action, args[1], args[2], args[3])
			if err != nil {
				return nil, err
			}
			return w, nil
		}
	case KindSwimming:
		return CodeSwimming, 5, func(args []float64) (Workout, error) {
			action, err := actionCount(args[0])
			if err != nil {
				return nil, err
			}
			s, err := NewSwimming(action, args[1], args[2], args[3], args[4])
			if err != nil {
				return nil, err
			}
			return s, nil
		}
	}
	panic("workout: no constructor for kind " + k.String())
}

// actionCount accepts whole step or stroke counts within int32 range only
func actionCount(v float64) (int, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) || math.Abs(v) > math.MaxInt32 {
		return 0, &InvalidArgumentError{Name: "action", Value: v}
	}
	return int(v), nil
}

var defaultRegistry = DefaultRegistry()

// ReadPackage constructs a workout from a tracker package using the default
// registry
func ReadPackage(code string, args []float64) (Workout, error) {
	return defaultRegistry.Read(code, args)
}

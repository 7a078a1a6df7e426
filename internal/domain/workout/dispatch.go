package workout

import (
	"errors"
	"slices"
)

// Activity codes accepted by Build.
const (
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
	CodeSwimming = "SWM"
)

type factory struct {
	arity int
	build func(p params) (Workout, error)
}

var registry = map[string]factory{ //nolint:gochecknoglobals // static dispatch table
	CodeRunning:  {arity: 3, build: buildRunning},
	CodeWalking:  {arity: 4, build: buildWalking},
	CodeSwimming: {arity: 5, build: buildSwimming},
}

// Build creates the workout identified by code from positional data.
// Errors are *ActivityError wrapping ErrUnknownActivity, ErrArityMismatch
// or ErrInvalidParameter; domain errors from the constructors are returned
// wrapped the same way.
func Build(code string, data []any) (Workout, error) {
	f, ok := registry[code]
	if !ok {
		return nil, &ActivityError{Code: code, Err: ErrUnknownActivity}
	}
	if len(data) != f.arity {
		return nil, &ActivityError{Code: code, Want: f.arity, Got: len(data), Err: ErrArityMismatch}
	}
	w, err := f.build(params{code: code, data: data})
	if err != nil {
		var ae *ActivityError
		if errors.As(err, &ae) {
			return nil, err
		}
		return nil, &ActivityError{Code: code, Err: err}
	}
	return w, nil
}

// Codes returns the registered activity codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// common reads action, duration and weight, shared by every activity.
func common(p params) (action int, duration, weight float64, err error) {
	if action, err = p.count(0, "action"); err != nil {
		return
	}
	if duration, err = p.number(1, "duration"); err != nil {
		return
	}
	weight, err = p.number(2, "weight")
	return
}

func buildRunning(p params) (Workout, error) {
	action, duration, weight, err := common(p)
	if err != nil {
		return nil, err
	}
	r, err := NewRunning(action, duration, weight)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func buildWalking(p params) (Workout, error) {
	action, duration, weight, err := common(p)
	if err != nil {
		return nil, err
	}
	height, err := p.number(3, "height")
	if err != nil {
		return nil, err
	}
	w, err := NewSportsWalking(action, duration, weight, height)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func buildSwimming(p params) (Workout, error) {
	action, duration, weight, err := common(p)
	if err != nil {
		return nil, err
	}
	lengthPool, err := p.number(3, "length_pool")
	if err != nil {
		return nil, err
	}
	countPool, err := p.count(4, "count_pool")
	if err != nil {
		return nil, err
	}
	s, err := NewSwimming(action, duration, weight, lengthPool, countPool)
	if err != nil {
		return nil, err
	}
	return s, nil
}

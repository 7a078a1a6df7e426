package workout

import (
	"encoding/json"
	"fmt"
	"math"
)

// params reads positional values off an untyped package payload.
type params struct {
	code string
	data []any
}

func (p params) number(i int, name string) (float64, error) {
	v, ok := toFloat(p.data[i])
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ActivityError{
			Code:  p.code,
			Param: name,
			Err:   fmt.Errorf("%w: %v (%T) is not a number", ErrInvalidParameter, p.data[i], p.data[i]),
		}
	}
	return v, nil
}

func (p params) count(i int, name string) (int, error) {
	v, err := p.number(i, name)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
		return 0, &ActivityError{
			Code:  p.code,
			Param: name,
			Err:   fmt.Errorf("%w: %v is not a whole count", ErrInvalidParameter, p.data[i]),
		}
	}
	return int(v), nil
}

// toFloat accepts Go numeric kinds and json.Number. Strings and booleans
// are rejected even when they look numeric.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

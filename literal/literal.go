// Package literal turns JSON or CBOR input into tagval values. It accepts
// scalars and flat arrays of scalars; null, objects and nested arrays have
// no value kind and are rejected.
package literal

import (
	"errors"
	"fmt"
	"math"

	"github.com/starfederation/tagval"
	"github.com/starfederation/tagval/vector"
)

var ErrUnsupported = errors.New("literal has no value kind")

// fromGo converts a decoded scalar into a value.
func fromGo(v any) (*tagval.Value, error) {
	switch val := v.(type) {
	case bool:
		return tagval.Bool(val), nil
	case int64:
		return tagval.Int(val), nil
	case uint64:
		if val > math.MaxInt64 {
			return tagval.Double(float64(val)), nil
		}
		return tagval.Int(int64(val)), nil
	case float64:
		return tagval.Double(val), nil
	case float32:
		return tagval.Double(float64(val)), nil
	case string:
		return tagval.String(val), nil
	case []byte:
		return tagval.FromBytes(append([]byte{}, val...)), nil
	case nil:
		return nil, fmt.Errorf("%w: null", ErrUnsupported)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

// fromGoList converts a decoded top-level item: a scalar becomes a
// one-element vector, a flat array becomes a vector in order.
func fromGoList(v any) (*vector.Vector, error) {
	items, ok := v.([]any)
	if !ok {
		val, err := fromGo(v)
		if err != nil {
			return nil, err
		}
		return vector.Of(val), nil
	}
	vec := vector.New(len(items))
	for i, item := range items {
		val, err := fromGo(item)
		if err != nil {
			vec.Release()
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		vec.Push(val)
	}
	return vec, nil
}

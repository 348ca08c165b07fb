package literal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/minio/simdjson-go"
	"github.com/starfederation/tagval"
	"github.com/starfederation/tagval/vector"
)

// ParseScalar parses a single JSON scalar. Integers without a fraction or
// exponent become int values; other numbers become doubles.
func ParseScalar(data []byte) (*tagval.Value, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("json input is empty")
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("invalid character after top-level value")
	}
	return scalarFromStd(v)
}

func scalarFromStd(v any) (*tagval.Value, error) {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return tagval.Int(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid json number: %s", n)
		}
		return tagval.Double(f), nil
	}
	return fromGo(v)
}

// FromJSON parses a JSON scalar or a flat JSON array of scalars. Arrays are
// parsed with simdjson when the CPU supports it.
func FromJSON(data []byte) (*vector.Vector, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("json input is empty")
	}
	switch trimmed[0] {
	case '{':
		return nil, fmt.Errorf("%w: object", ErrUnsupported)
	case '[':
	default:
		val, err := ParseScalar(trimmed)
		if err != nil {
			return nil, err
		}
		return vector.Of(val), nil
	}
	if !simdjson.SupportedCPU() {
		return fromStdJSON(trimmed)
	}
	parsed, err := simdjson.Parse(trimmed, nil)
	if err != nil {
		return nil, err
	}
	it := parsed.Iter()
	if it.Advance() != simdjson.TypeRoot {
		return nil, fmt.Errorf("json root not found")
	}
	typ, root, err := it.Root(nil)
	if err != nil {
		return nil, err
	}
	if typ != simdjson.TypeArray {
		return nil, fmt.Errorf("json root is %v, want array", typ)
	}
	arr, err := root.Array(nil)
	if err != nil {
		return nil, err
	}
	vec := vector.New(0)
	iter := arr.Iter()
	for i := 0; ; i++ {
		t := iter.Advance()
		if t == simdjson.TypeNone {
			break
		}
		val, err := valueFromJSONIter(t, &iter)
		if err != nil {
			vec.Release()
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		vec.Push(val)
	}
	return vec, nil
}

func fromStdJSON(data []byte) (*vector.Vector, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, err
	}
	vec := vector.New(len(items))
	for i, item := range items {
		val, err := scalarFromStd(item)
		if err != nil {
			vec.Release()
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		vec.Push(val)
	}
	return vec, nil
}

func valueFromJSONIter(typ simdjson.Type, it *simdjson.Iter) (*tagval.Value, error) {
	switch typ {
	case simdjson.TypeBool:
		v, err := it.Bool()
		if err != nil {
			return nil, err
		}
		return tagval.Bool(v), nil
	case simdjson.TypeInt:
		v, err := it.Int()
		if err != nil {
			return nil, err
		}
		return tagval.Int(v), nil
	case simdjson.TypeUint:
		v, err := it.Uint()
		if err != nil {
			return nil, err
		}
		if v > math.MaxInt64 {
			return tagval.Double(float64(v)), nil
		}
		return tagval.Int(int64(v)), nil
	case simdjson.TypeFloat:
		v, err := it.Float()
		if err != nil {
			return nil, err
		}
		return tagval.Double(v), nil
	case simdjson.TypeString:
		b, err := it.StringBytes()
		if err != nil {
			return nil, err
		}
		return tagval.FromBytes(append([]byte{}, b...)), nil
	case simdjson.TypeNull:
		return nil, fmt.Errorf("%w: null", ErrUnsupported)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, typ)
	}
}

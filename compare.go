package tagval

import (
	"bytes"
	"cmp"
)

// Compare orders two values of the same kind: ints and doubles
// numerically, strings bytewise. Bools have no order. Values of different
// kinds fail with ErrNotComparable. NaN orders before every other double.
func Compare(a, b *Value) (int, error) {
	ka, err := a.Kind()
	if err != nil {
		return 0, err
	}
	kb, err := b.Kind()
	if err != nil {
		return 0, err
	}
	if ka != kb || ka == KindBool {
		return 0, notComparable("compare", ka, kb)
	}
	switch ka {
	case KindInt:
		return cmp.Compare(a.i, b.i), nil
	case KindDouble:
		return cmp.Compare(a.f, b.f), nil
	default:
		if a.s == nil || b.s == nil {
			return 0, invalidObject("compare")
		}
		return bytes.Compare(a.s.content, b.s.content), nil
	}
}

// Min returns the lesser of a and b, or a when they are equal.
func Min(a, b *Value) (*Value, error) {
	c, err := Compare(a, b)
	if err != nil {
		return nil, err
	}
	if c <= 0 {
		return a, nil
	}
	return b, nil
}

// Max returns the greater of a and b, or a when they are equal.
func Max(a, b *Value) (*Value, error) {
	c, err := Compare(a, b)
	if err != nil {
		return nil, err
	}
	if c >= 0 {
		return a, nil
	}
	return b, nil
}

// Equal reports whether a and b are live values of the same kind holding
// the same payload. Doubles compare with ==, so NaN is never equal.
func Equal(a, b *Value) bool {
	if a == nil || b == nil || !a.kind.Valid() || a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindInt:
		return a.i == b.i
	case KindBool:
		return a.b == b.b
	case KindDouble:
		return a.f == b.f
	default:
		return a.s.Equal(b.s)
	}
}

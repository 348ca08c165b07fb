package tagval

import (
	"math"
	"strconv"
	"strings"
)

// AsInt64 returns v as int64 when it can be reasonably converted.
// Doubles are truncated; text is parsed as an integer, then as a float.
func (v *Value) AsInt64() (int64, bool) {
	if v == nil {
		return 0, false
	}
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindDouble:
		return floatToInt64(v.f)
	case KindString:
		if v.s == nil {
			return 0, false
		}
		return parseInt64(v.s.String())
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// AsFloat64 returns v as float64 when it can be reasonably converted.
func (v *Value) AsFloat64() (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch v.kind {
	case KindDouble:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	case KindString:
		if v.s == nil {
			return 0, false
		}
		return parseFloat64(v.s.String())
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// AsBool returns v as bool. Numbers are true when non-zero; text accepts
// the forms understood by strconv.ParseBool.
func (v *Value) AsBool() (bool, bool) {
	if v == nil {
		return false, false
	}
	switch v.kind {
	case KindBool:
		return v.b, true
	case KindInt:
		return v.i != 0, true
	case KindDouble:
		if math.IsNaN(v.f) {
			return false, false
		}
		return v.f != 0, true
	case KindString:
		if v.s == nil {
			return false, false
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v.s.String()))
		if err != nil {
			return false, false
		}
		return b, true
	default:
		return false, false
	}
}

// AsString returns v formatted as text. Bools format as "true"/"false".
func (v *Value) AsString() (string, bool) {
	if v == nil || !v.kind.Valid() || (v.kind == KindString && v.s == nil) {
		return "", false
	}
	return v.String(), true
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func parseInt64(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return floatToInt64(f)
	}
	return 0, false
}

func parseFloat64(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}
	return 0, false
}

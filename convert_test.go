package tagval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsInt64(t *testing.T) {
	tests := []struct {
		v    *Value
		want int64
		ok   bool
	}{
		{Int(9), 9, true},
		{Double(2.9), 2, true},
		{Double(math.NaN()), 0, false},
		{Double(math.Inf(1)), 0, false},
		{Bool(true), 1, true},
		{String(" 12 "), 12, true},
		{String("3.5"), 3, true},
		{String("nope"), 0, false},
		{String(""), 0, false},
		{&Value{}, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.v.AsInt64()
		assert.Equal(t, tt.ok, ok, "AsInt64(%v)", tt.v)
		assert.Equal(t, tt.want, got, "AsInt64(%v)", tt.v)
	}
}

func TestAsFloat64(t *testing.T) {
	got, ok := Int(3).AsFloat64()
	assert.True(t, ok)
	assert.Equal(t, 3.0, got)

	got, ok = String("1e3").AsFloat64()
	assert.True(t, ok)
	assert.Equal(t, 1000.0, got)

	_, ok = String("x").AsFloat64()
	assert.False(t, ok)

	got, ok = Bool(false).AsFloat64()
	assert.True(t, ok)
	assert.Zero(t, got)
}

func TestAsBool(t *testing.T) {
	b, ok := Int(0).AsBool()
	assert.True(t, ok)
	assert.False(t, b)

	b, ok = Double(0.1).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	b, ok = String("true").AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = String("maybe").AsBool()
	assert.False(t, ok)

	_, ok = Double(math.NaN()).AsBool()
	assert.False(t, ok)
}

func TestAsString(t *testing.T) {
	s, ok := Double(1.5).AsString()
	assert.True(t, ok)
	assert.Equal(t, "1.5", s)

	s, ok = Bool(true).AsString()
	assert.True(t, ok)
	assert.Equal(t, "true", s)

	_, ok = FromStr(nil).AsString()
	assert.False(t, ok)

	var nilValue *Value
	_, ok = nilValue.AsString()
	assert.False(t, ok)
}

package vector

import (
	"testing"

	"github.com/starfederation/tagval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	vec := Of(tagval.Int(3), tagval.Int(-1), tagval.Int(2), tagval.Int(-1))
	require.NoError(t, vec.Sort())
	assert.Equal(t, []int64{-1, -1, 2, 3}, ints(t, vec))

	words := Of(tagval.String("pear"), tagval.String("apple"), tagval.String("fig"))
	require.NoError(t, words.Sort())
	var got []string
	words.ForEach(func(v *tagval.Value, _ int) { got = append(got, v.String()) })
	assert.Equal(t, []string{"apple", "fig", "pear"}, got)
}

func TestSortRejectsMixedKinds(t *testing.T) {
	vec := Of(tagval.Int(2), tagval.Double(1), tagval.Int(1))
	require.ErrorIs(t, vec.Sort(), tagval.ErrNotComparable)
	assert.Equal(t, []string{"2", "1", "1"}, []string{vec.Values()[0].String(), vec.Values()[1].String(), vec.Values()[2].String()})

	bools := Of(tagval.Bool(true), tagval.Bool(false))
	require.ErrorIs(t, bools.Sort(), tagval.ErrNotComparable)
	tagval.Reset()
}

func TestMinMax(t *testing.T) {
	first := tagval.Double(0.5)
	vec := Of(tagval.Double(2), first, tagval.Double(0.5), tagval.Double(9))
	m, err := vec.Min()
	require.NoError(t, err)
	assert.Same(t, first, m)

	m, err = vec.Max()
	require.NoError(t, err)
	assert.Equal(t, "9", m.String())

	_, err = New(0).Min()
	require.ErrorIs(t, err, ErrEmpty)

	_, err = Of(tagval.Int(1), tagval.String("1")).Max()
	require.ErrorIs(t, err, tagval.ErrNotComparable)
	tagval.Reset()
}

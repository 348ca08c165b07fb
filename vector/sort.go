package vector

import (
	"slices"

	"github.com/starfederation/tagval"
)

// Sort orders the vector ascending with tagval.Compare. The sort is
// stable. If any pair is not comparable the vector is left unchanged and
// the comparison error is returned.
func (vec *Vector) Sort() error {
	for i := 1; i < len(vec.items); i++ {
		if _, err := tagval.Compare(vec.items[0], vec.items[i]); err != nil {
			return err
		}
	}
	slices.SortStableFunc(vec.items, func(a, b *tagval.Value) int {
		c, _ := tagval.Compare(a, b)
		return c
	})
	return nil
}

// Min returns the least value, the first one on ties.
func (vec *Vector) Min() (*tagval.Value, error) {
	return vec.fold(tagval.Min)
}

// Max returns the greatest value, the first one on ties.
func (vec *Vector) Max() (*tagval.Value, error) {
	return vec.fold(tagval.Max)
}

func (vec *Vector) fold(pick func(a, b *tagval.Value) (*tagval.Value, error)) (*tagval.Value, error) {
	if len(vec.items) == 0 {
		return nil, ErrEmpty
	}
	best := vec.items[0]
	for _, v := range vec.items[1:] {
		next, err := pick(best, v)
		if err != nil {
			return nil, err
		}
		best = next
	}
	return best, nil
}

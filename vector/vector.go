// Package vector provides a growable, index-addressed sequence of value
// handles. A Vector stores handles only: it never destroys the values it
// holds unless DestroyAll is called.
package vector

import (
	"errors"
	"fmt"

	"github.com/starfederation/tagval"
)

var (
	ErrBadIndex = errors.New("index out of bounds")
	ErrEmpty    = errors.New("vector is empty")
)

// Vector is a growable sequence of *tagval.Value.
type Vector struct {
	items []*tagval.Value
}

// New returns an empty vector with room for size values.
func New(size int) *Vector {
	if size < 0 {
		size = 0
	}
	return &Vector{items: getValueSlice(size)}
}

// Of returns a vector holding vals in order.
func Of(vals ...*tagval.Value) *Vector {
	vec := New(len(vals))
	vec.items = append(vec.items, vals...)
	return vec
}

// Len returns the number of values.
func (vec *Vector) Len() int {
	return len(vec.items)
}

func (vec *Vector) bounds(index, limit int) error {
	if index < 0 || index >= limit {
		return fmt.Errorf("%w: %d (length %d)", ErrBadIndex, index, len(vec.items))
	}
	return nil
}

// Get returns the value at index.
func (vec *Vector) Get(index int) (*tagval.Value, error) {
	if err := vec.bounds(index, len(vec.items)); err != nil {
		return nil, err
	}
	return vec.items[index], nil
}

// Set replaces the value at index. The previous value is not destroyed.
func (vec *Vector) Set(index int, v *tagval.Value) error {
	if err := vec.bounds(index, len(vec.items)); err != nil {
		return err
	}
	vec.items[index] = v
	return nil
}

// Push appends v.
func (vec *Vector) Push(v *tagval.Value) {
	vec.items = append(vec.items, v)
}

// Pop removes and returns the last value.
func (vec *Vector) Pop() (*tagval.Value, error) {
	n := len(vec.items)
	if n == 0 {
		return nil, ErrEmpty
	}
	v := vec.items[n-1]
	vec.items[n-1] = nil
	vec.items = vec.items[:n-1]
	return v, nil
}

// Insert places v at index, shifting later values right. index may equal
// Len, which appends.
func (vec *Vector) Insert(index int, v *tagval.Value) error {
	if err := vec.bounds(index, len(vec.items)+1); err != nil {
		return err
	}
	vec.items = append(vec.items, nil)
	copy(vec.items[index+1:], vec.items[index:])
	vec.items[index] = v
	return nil
}

// Remove deletes and returns the value at index.
func (vec *Vector) Remove(index int) (*tagval.Value, error) {
	if err := vec.bounds(index, len(vec.items)); err != nil {
		return nil, err
	}
	v := vec.items[index]
	copy(vec.items[index:], vec.items[index+1:])
	vec.items[len(vec.items)-1] = nil
	vec.items = vec.items[:len(vec.items)-1]
	return v, nil
}

// Copy returns a shallow copy: both vectors share the same values.
func (vec *Vector) Copy() *Vector {
	out := New(len(vec.items))
	out.items = append(out.items, vec.items...)
	return out
}

// ForEach calls fn with each value and its index, in order.
func (vec *Vector) ForEach(fn func(v *tagval.Value, index int)) {
	for i, v := range vec.items {
		fn(v, i)
	}
}

// Values returns the backing slice. It is valid until the next mutation.
func (vec *Vector) Values() []*tagval.Value {
	return vec.items
}

// DestroyAll destroys every value and empties the vector. It returns the
// first destroy error, after attempting all of them.
func (vec *Vector) DestroyAll() error {
	var first error
	for i, v := range vec.items {
		if err := v.Destroy(); err != nil && first == nil {
			first = fmt.Errorf("destroy index %d: %w", i, err)
		}
		vec.items[i] = nil
	}
	vec.items = vec.items[:0]
	return first
}

// Release returns the backing storage to the pool. The vector is empty
// afterwards and may be reused; its values are not destroyed.
func (vec *Vector) Release() {
	putValueSlice(vec.items)
	vec.items = nil
}

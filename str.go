package tagval

import (
	"bytes"

	"github.com/delaneyj/toolbelt/bytebufferpool"
)

// Str is an immutable byte string with its length and hash computed once
// at construction. A Str owns its buffer; operations that change content
// build a new Str.
type Str struct {
	content []byte
	length  int
	hash    uint64
}

// NewStr takes ownership of b. The caller must not modify b afterwards.
func NewStr(b []byte) *Str {
	return &Str{
		content: b,
		length:  len(b),
		hash:    HashBytes(b),
	}
}

// StrFromString copies s into a new Str.
func StrFromString(s string) *Str {
	return &Str{
		content: []byte(s),
		length:  len(s),
		hash:    HashString(s),
	}
}

// Bytes returns the content. The slice must not be modified.
func (s *Str) Bytes() []byte { return s.content }

func (s *Str) String() string { return string(s.content) }

// Len returns the cached byte length.
func (s *Str) Len() int { return s.length }

// Hash returns the cached hash.
func (s *Str) Hash() uint64 { return s.hash }

// Equal reports whether s and o hold the same bytes. Length and hash
// reject most mismatches before the bytes are compared.
func (s *Str) Equal(o *Str) bool {
	if s == nil || o == nil {
		return false
	}
	if s == o {
		return true
	}
	if !s.EqualHashed(o) {
		return false
	}
	return bytes.Equal(s.content, o.content)
}

// EqualHashed compares only the cached length and hash. Two different
// strings with colliding hashes compare equal; use Equal unless that risk
// is acceptable.
func (s *Str) EqualHashed(o *Str) bool {
	if s == nil || o == nil {
		return false
	}
	return s.length == o.length && s.hash == o.hash
}

// ConcatStr returns a new Str holding a followed by b. Neither operand is
// modified.
func ConcatStr(a, b *Str) *Str {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	buf.Write(a.content)
	buf.Write(b.content)
	return NewStr(append([]byte{}, buf.Bytes()...))
}

// Equals reports whether a and b are both string values with equal
// content. Invalid operands compare unequal; the failure is still recorded
// on the default channel.
func Equals(a, b *Value) bool {
	sa, err := a.Str()
	if err != nil {
		return false
	}
	sb, err := b.Str()
	if err != nil {
		return false
	}
	return sa.Equal(sb)
}

// EqualsHashed is Equals using only cached length and hash.
func EqualsHashed(a, b *Value) bool {
	sa, err := a.Str()
	if err != nil {
		return false
	}
	sb, err := b.Str()
	if err != nil {
		return false
	}
	return sa.EqualHashed(sb)
}

// Concat returns a new string value holding the content of a followed by
// b. If either operand is not a live string value it returns an empty
// string value and the error.
func Concat(a, b *Value) (*Value, error) {
	sa, err := a.Str()
	if err != nil {
		return String(""), err
	}
	sb, err := b.Str()
	if err != nil {
		return String(""), err
	}
	return FromStr(ConcatStr(sa, sb)), nil
}

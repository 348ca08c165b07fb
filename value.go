// Package tagval implements a dynamically-tagged scalar: a Value holds an
// int, bool, double or string, and every accessor checks the tag before it
// touches the payload.
package tagval

import "strconv"

// Value holds exactly one int, bool, double or string payload, selected by
// its kind. Scalars are stored inline. A string Value owns its Str.
//
// The zero Value and a destroyed Value are invalid objects: every accessor
// on them fails with ErrInvalidObject.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    *Str
}

// Int returns a new int value.
func Int(i int64) *Value {
	return &Value{kind: KindInt, i: i}
}

// Bool returns a new bool value.
func Bool(b bool) *Value {
	return &Value{kind: KindBool, b: b}
}

// Double returns a new double value.
func Double(f float64) *Value {
	return &Value{kind: KindDouble, f: f}
}

// String returns a new string value holding a copy of s.
func String(s string) *Value {
	return &Value{kind: KindString, s: StrFromString(s)}
}

// FromBytes returns a new string value that takes ownership of b.
func FromBytes(b []byte) *Value {
	return &Value{kind: KindString, s: NewStr(b)}
}

// FromStr returns a new string value owning s. A nil s yields a value
// whose string accessors fail with ErrInvalidObject.
func FromStr(s *Str) *Value {
	return &Value{kind: KindString, s: s}
}

func (v *Value) check(op string, want Kind) error {
	if v == nil || !v.kind.Valid() {
		return invalidObject(op)
	}
	if v.kind != want {
		return incorrectType(op, want, v.kind)
	}
	if want == KindString && v.s == nil {
		return invalidObject(op)
	}
	return nil
}

// Kind returns the discriminant of v.
func (v *Value) Kind() (Kind, error) {
	if v == nil || !v.kind.Valid() {
		return KindInvalid, invalidObject("kind")
	}
	return v.kind, nil
}

// Is reports whether v is live and of kind k. It never records a failure.
func (v *Value) Is(k Kind) bool {
	return v != nil && v.kind == k
}

func (v *Value) Int() (int64, error) {
	if err := v.check("fetch int", KindInt); err != nil {
		return 0, err
	}
	return v.i, nil
}

func (v *Value) SetInt(i int64) error {
	if err := v.check("set int", KindInt); err != nil {
		return err
	}
	v.i = i
	return nil
}

func (v *Value) Bool() (bool, error) {
	if err := v.check("fetch bool", KindBool); err != nil {
		return false, err
	}
	return v.b, nil
}

func (v *Value) SetBool(b bool) error {
	if err := v.check("set bool", KindBool); err != nil {
		return err
	}
	v.b = b
	return nil
}

func (v *Value) Double() (float64, error) {
	if err := v.check("fetch double", KindDouble); err != nil {
		return 0, err
	}
	return v.f, nil
}

func (v *Value) SetDouble(f float64) error {
	if err := v.check("set double", KindDouble); err != nil {
		return err
	}
	v.f = f
	return nil
}

// Str returns the string handle of a string value.
func (v *Value) Str() (*Str, error) {
	if err := v.check("fetch string", KindString); err != nil {
		return nil, err
	}
	return v.s, nil
}

// Text returns the content of a string value as a Go string.
func (v *Value) Text() (string, error) {
	if err := v.check("fetch string", KindString); err != nil {
		return "", err
	}
	return v.s.String(), nil
}

// SetString replaces the content of a string value with a copy of s.
func (v *Value) SetString(s string) error {
	if err := v.check("set string", KindString); err != nil {
		return err
	}
	v.s = StrFromString(s)
	return nil
}

// SetBytes replaces the content of a string value, taking ownership of b.
func (v *Value) SetBytes(b []byte) error {
	if err := v.check("set string", KindString); err != nil {
		return err
	}
	v.s = NewStr(b)
	return nil
}

// Len returns the cached byte length of a string value.
func (v *Value) Len() (int, error) {
	if err := v.check("string length", KindString); err != nil {
		return 0, err
	}
	return v.s.Len(), nil
}

// Hash returns the cached hash of a string value.
func (v *Value) Hash() (uint64, error) {
	if err := v.check("string hash", KindString); err != nil {
		return 0, err
	}
	return v.s.Hash(), nil
}

// Destroy releases the payload. Any later use of v, including a second
// Destroy, fails with ErrInvalidObject.
func (v *Value) Destroy() error {
	if v == nil || !v.kind.Valid() {
		return invalidObject("destroy")
	}
	*v = Value{}
	return nil
}

// Clone returns a deep copy of v. String content is copied into a new
// buffer.
func (v *Value) Clone() (*Value, error) {
	if v == nil || !v.kind.Valid() {
		return nil, invalidObject("clone")
	}
	if v.kind == KindString {
		if v.s == nil {
			return nil, invalidObject("clone")
		}
		return FromStr(NewStr(append([]byte{}, v.s.content...))), nil
	}
	c := *v
	return &c, nil
}

// Visitor receives the payload of a value by kind.
type Visitor interface {
	VisitInt(int64) error
	VisitBool(bool) error
	VisitDouble(float64) error
	VisitString(*Str) error
}

// Visit calls the Visitor method matching the kind of v.
func (v *Value) Visit(vis Visitor) error {
	if v == nil {
		return invalidObject("visit")
	}
	switch v.kind {
	case KindInt:
		return vis.VisitInt(v.i)
	case KindBool:
		return vis.VisitBool(v.b)
	case KindDouble:
		return vis.VisitDouble(v.f)
	case KindString:
		if v.s == nil {
			return invalidObject("visit")
		}
		return vis.VisitString(v.s)
	default:
		return invalidObject("visit")
	}
}

// String formats the payload for display. Invalid values print as
// "<invalid>".
func (v *Value) String() string {
	if v == nil {
		return "<invalid>"
	}
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDouble:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		if v.s == nil {
			return "<invalid>"
		}
		return v.s.String()
	default:
		return "<invalid>"
	}
}

package tagval

import "fmt"

// Kind is the discriminant of a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindBool
	KindDouble
	KindString
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// Valid reports whether k names one of the four value kinds.
func (k Kind) Valid() bool {
	return k >= KindInt && k <= KindString
}

// ParseKind returns the Kind named by s.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "int":
		return KindInt, nil
	case "bool":
		return KindBool, nil
	case "double":
		return KindDouble, nil
	case "string":
		return KindString, nil
	default:
		return KindInvalid, fmt.Errorf("unknown kind %q", s)
	}
}

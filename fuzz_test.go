package tagval

import (
	"bytes"
	"testing"
)

func FuzzConcat(f *testing.F) {
	seeds := [][2]string{
		{"", ""},
		{"Hello, ", "world"},
		{"\x00", "\xff\xfe"},
	}
	for _, seed := range seeds {
		f.Add([]byte(seed[0]), []byte(seed[1]))
	}
	f.Fuzz(func(t *testing.T, a, b []byte) {
		va := FromBytes(append([]byte{}, a...))
		vb := FromBytes(append([]byte{}, b...))
		out, err := Concat(va, vb)
		if err != nil {
			t.Fatalf("concat: %v", err)
		}
		s, err := out.Str()
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}
		want := append(append([]byte{}, a...), b...)
		if !bytes.Equal(s.Bytes(), want) {
			t.Fatalf("content %q != %q", s.Bytes(), want)
		}
		if s.Len() != len(want) {
			t.Fatalf("length %d != %d", s.Len(), len(want))
		}
		if s.Hash() != HashBytes(want) {
			t.Fatalf("hash %d != %d", s.Hash(), HashBytes(want))
		}
		sa, _ := va.Str()
		if !bytes.Equal(sa.Bytes(), a) {
			t.Fatalf("left operand modified: %q != %q", sa.Bytes(), a)
		}
	})
}

func FuzzEquals(f *testing.F) {
	f.Add([]byte("abc"), []byte("abc"))
	f.Add([]byte("abc"), []byte("abcd"))
	f.Fuzz(func(t *testing.T, a, b []byte) {
		got := Equals(FromBytes(a), FromBytes(b))
		if got != bytes.Equal(a, b) {
			t.Fatalf("Equals(%q, %q) = %v", a, b, got)
		}
		if HashBytes(a) != HashString(string(a)) {
			t.Fatalf("hash mismatch for %q", a)
		}
	})
}

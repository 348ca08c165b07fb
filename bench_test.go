package tagval

import (
	"strings"
	"testing"
)

var (
	sinkBool  bool
	sinkHash  uint64
	sinkValue *Value
)

var benchText = strings.Repeat("tagged values ", 64)

func BenchmarkHashString(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	for i := 0; i < b.N; i++ {
		sinkHash = HashString(benchText)
	}
}

func BenchmarkEquals(b *testing.B) {
	x := String(benchText)
	y := String(benchText)
	b.Run("exact", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkBool = Equals(x, y)
		}
	})
	b.Run("hashed", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkBool = EqualsHashed(x, y)
		}
	})
}

func BenchmarkConcat(b *testing.B) {
	x := String(benchText)
	y := String("tail")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkValue, _ = Concat(x, y)
	}
}

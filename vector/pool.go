package vector

import (
	"github.com/delaneyj/toolbelt"
	"github.com/starfederation/tagval"
)

const pooledCap = 16

var valueSlicePool = toolbelt.New(func() []*tagval.Value { return make([]*tagval.Value, 0, pooledCap) })

func getValueSlice(n int) []*tagval.Value {
	if n <= pooledCap {
		return valueSlicePool.Get()[:0]
	}
	return make([]*tagval.Value, 0, n)
}

func putValueSlice(s []*tagval.Value) {
	if s == nil || cap(s) > 4*pooledCap {
		return
	}
	s = s[:cap(s)]
	for i := range s {
		s[i] = nil
	}
	valueSlicePool.Put(s[:0])
}

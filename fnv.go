package tagval

const (
	fnvOffsetBasis uint64 = 2166136261
	fnvPrime       uint64 = 16777619
)

// HashBytes hashes b with the 32-bit FNV constants, XOR before multiply,
// carried in a 64-bit accumulator without masking. HashBytes(nil) is the
// offset basis.
func HashBytes(b []byte) uint64 {
	h := fnvOffsetBasis
	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime
	}
	return h
}

// HashString is HashBytes for a string without copying it.
func HashString(s string) uint64 {
	h := fnvOffsetBasis
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime
	}
	return h
}

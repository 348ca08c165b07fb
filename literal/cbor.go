package literal

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/starfederation/tagval/vector"
)

var cborDec cbor.DecMode

func init() {
	dm, err := cbor.DecOptions{
		IntDec: cbor.IntDecConvertNone,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	cborDec = dm
}

// FromCBOR decodes a CBOR data item holding a scalar or a flat array of
// scalars. Byte strings become string values.
func FromCBOR(data []byte) (*vector.Vector, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cbor input is empty")
	}
	var v any
	if err := cborDec.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return fromGoList(v)
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/starfederation/tagval"
	"github.com/starfederation/tagval/literal"
	"github.com/starfederation/tagval/vector"
)

type InputFlags struct {
	Format string `enum:"json,cbor" default:"json" help:"Encoding of --file input (${enum})." env:"TAGVAL_FORMAT"`
	File   string `short:"f" placeholder:"PATH" help:"Read values from a file, or - for stdin."`
}

// load collects the command's values. With --file the whole input is one
// literal (a scalar or a flat array). Otherwise each argument is parsed as
// a JSON scalar and falls back to a plain string.
func (in InputFlags) load(rc *runContext, args []string) (*vector.Vector, error) {
	if in.File != "" {
		data, err := in.read(rc)
		if err != nil {
			return nil, err
		}
		rc.logf("read %d bytes of %s from %s", len(data), in.Format, in.File)
		if in.Format == "cbor" {
			return literal.FromCBOR(data)
		}
		return literal.FromJSON(data)
	}
	if in.Format == "cbor" {
		return nil, fmt.Errorf("cbor input requires --file")
	}
	vec := vector.New(len(args))
	for _, arg := range args {
		v, err := literal.ParseScalar([]byte(arg))
		if err != nil {
			rc.logf("%q is not a json scalar, using it as a string", arg)
			v = tagval.String(arg)
		}
		vec.Push(v)
	}
	return vec, nil
}

func (in InputFlags) read(rc *runContext) ([]byte, error) {
	if in.File == "-" {
		return io.ReadAll(rc.in)
	}
	return os.ReadFile(in.File)
}

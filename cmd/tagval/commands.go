package main

import (
	"fmt"
	"strconv"

	"github.com/delaneyj/toolbelt/bytebufferpool"
	"github.com/starfederation/tagval"
	"github.com/starfederation/tagval/vector"
)

type hashCmd struct {
	Text []string `arg:"" help:"Strings to hash, taken verbatim."`
}

func (c *hashCmd) Run(rc *runContext) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	for _, text := range c.Text {
		s := tagval.StrFromString(text)
		fmt.Fprintf(buf, "%d\t%d\t%q\n", s.Hash(), s.Len(), text)
	}
	_, err := rc.out.Write(buf.Bytes())
	return err
}

type inspectCmd struct {
	InputFlags `embed:""`
	Values []string `arg:"" optional:"" help:"Values as JSON scalars; anything else is a string."`
}

func (c *inspectCmd) Run(rc *runContext) error {
	vec, err := c.load(rc, c.Values)
	if err != nil {
		return err
	}
	defer vec.Release()
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	var visitErr error
	vec.ForEach(func(v *tagval.Value, _ int) {
		if visitErr != nil {
			return
		}
		visitErr = v.Visit(describer{buf: buf})
	})
	if visitErr != nil {
		return visitErr
	}
	_, err = rc.out.Write(buf.Bytes())
	return err
}

// describer writes one line per value: kind, payload and, for strings,
// the cached length and hash.
type describer struct {
	buf *bytebufferpool.ByteBuffer
}

func (d describer) VisitInt(i int64) error {
	fmt.Fprintf(d.buf, "%s\t%d\n", tagval.KindInt, i)
	return nil
}

func (d describer) VisitBool(b bool) error {
	fmt.Fprintf(d.buf, "%s\t%t\n", tagval.KindBool, b)
	return nil
}

func (d describer) VisitDouble(f float64) error {
	fmt.Fprintf(d.buf, "%s\t%s\n", tagval.KindDouble, strconv.FormatFloat(f, 'g', -1, 64))
	return nil
}

func (d describer) VisitString(s *tagval.Str) error {
	fmt.Fprintf(d.buf, "%s\t%q\tlen=%d\thash=%d\n", tagval.KindString, s.String(), s.Len(), s.Hash())
	return nil
}

type concatCmd struct {
	InputFlags `embed:""`
	Values []string `arg:"" optional:"" help:"Strings to join in order."`
}

func (c *concatCmd) Run(rc *runContext) error {
	vec, err := c.load(rc, c.Values)
	if err != nil {
		return err
	}
	defer vec.Release()
	acc := tagval.String("")
	for i, v := range vec.Values() {
		next, err := tagval.Concat(acc, v)
		if err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
		acc = next
	}
	s, err := acc.Str()
	if err != nil {
		return err
	}
	rc.logf("concatenated %d values into %d bytes", vec.Len(), s.Len())
	_, err = fmt.Fprintf(rc.out, "%s\n", s.Bytes())
	return err
}

type eqCmd struct {
	InputFlags `embed:""`
	Fast   bool     `help:"Compare strings by cached length and hash only." env:"TAGVAL_FAST_EQUAL"`
	Values []string `arg:"" optional:"" help:"Exactly two values."`
}

func (c *eqCmd) Run(rc *runContext) error {
	vec, err := c.load(rc, c.Values)
	if err != nil {
		return err
	}
	defer vec.Release()
	if vec.Len() != 2 {
		return fmt.Errorf("eq needs exactly 2 values, got %d", vec.Len())
	}
	a, b := vec.Values()[0], vec.Values()[1]
	eq := tagval.Equal(a, b)
	if c.Fast && a.Is(tagval.KindString) && b.Is(tagval.KindString) {
		eq = tagval.EqualsHashed(a, b)
	}
	_, err = fmt.Fprintln(rc.out, eq)
	return err
}

type minCmd struct {
	InputFlags `embed:""`
	Values []string `arg:"" optional:"" help:"Values of one orderable kind."`
}

func (c *minCmd) Run(rc *runContext) error {
	return pick(rc, c.InputFlags, c.Values, (*vector.Vector).Min)
}

type maxCmd struct {
	InputFlags `embed:""`
	Values []string `arg:"" optional:"" help:"Values of one orderable kind."`
}

func (c *maxCmd) Run(rc *runContext) error {
	return pick(rc, c.InputFlags, c.Values, (*vector.Vector).Max)
}

func pick(rc *runContext, in InputFlags, args []string, fn func(*vector.Vector) (*tagval.Value, error)) error {
	vec, err := in.load(rc, args)
	if err != nil {
		return err
	}
	defer vec.Release()
	v, err := fn(vec)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(rc.out, v)
	return err
}

type sortCmd struct {
	InputFlags `embed:""`
	Values []string `arg:"" optional:"" help:"Values of one orderable kind."`
}

func (c *sortCmd) Run(rc *runContext) error {
	vec, err := c.load(rc, c.Values)
	if err != nil {
		return err
	}
	defer vec.Release()
	if err := vec.Sort(); err != nil {
		return err
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	vec.ForEach(func(v *tagval.Value, _ int) {
		buf.WriteString(v.String())
		buf.WriteByte('\n')
	})
	_, err = rc.out.Write(buf.Bytes())
	return err
}

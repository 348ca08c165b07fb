package main

import (
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
)

type cli struct {
	Config  kong.ConfigFlag `help:"Load flag defaults from a JSON file."`
	Verbose bool            `short:"v" help:"Log each step to stderr." env:"TAGVAL_VERBOSE"`

	Hash    hashCmd    `cmd:"" help:"Print the hash and length of each argument."`
	Inspect inspectCmd `cmd:"" help:"Print the kind and payload of each value."`
	Concat  concatCmd  `cmd:"" help:"Concatenate string values."`
	Eq      eqCmd      `cmd:"" help:"Report whether two values are equal."`
	Min     minCmd     `cmd:"" help:"Print the least value."`
	Max     maxCmd     `cmd:"" help:"Print the greatest value."`
	Sort    sortCmd    `cmd:"" help:"Print the values in ascending order."`
}

// runContext is bound into every command's Run method.
type runContext struct {
	out     io.Writer
	in      io.Reader
	verbose bool
}

func (rc *runContext) logf(format string, args ...any) {
	if rc.verbose {
		log.Printf(format, args...)
	}
}

func newParser(args *cli, opts ...kong.Option) (*kong.Kong, error) {
	base := []kong.Option{
		kong.Name("tagval"),
		kong.Description("Inspect, hash, compare and concatenate tagged values."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, "~/.tagval.json"),
	}
	return kong.New(args, append(base, opts...)...)
}

func main() {
	log.SetFlags(0)

	var args cli
	parser, err := newParser(&args)
	if err != nil {
		log.Fatal(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	rc := &runContext{out: os.Stdout, in: os.Stdin, verbose: args.Verbose}
	if err := ctx.Run(rc); err != nil {
		log.Fatal(err)
	}
}

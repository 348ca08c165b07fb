package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fxamacker/cbor/v2"
	"github.com/starfederation/tagval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, argv ...string) (string, error) {
	t.Helper()
	var args cli
	var out, errOut bytes.Buffer
	parser, err := newParser(&args,
		kong.Writers(&errOut, &errOut),
		kong.Exit(func(int) { t.Fatalf("unexpected exit: %s", errOut.String()) }),
	)
	require.NoError(t, err)
	ctx, err := parser.Parse(argv)
	if err != nil {
		return "", err
	}
	rc := &runContext{out: &out, in: strings.NewReader(stdin), verbose: args.Verbose}
	err = ctx.Run(rc)
	return out.String(), err
}

func TestHash(t *testing.T) {
	out, err := run(t, "", "hash", "a", "Hello, world")
	require.NoError(t, err)
	assert.Equal(t, "36342608335481132\t1\t\"a\"\n14322739070115576253\t12\t\"Hello, world\"\n", out)
}

func TestInspect(t *testing.T) {
	out, err := run(t, "", "inspect", "7", "true", "1.5", "word")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "int\t7", lines[0])
	assert.Equal(t, "bool\ttrue", lines[1])
	assert.Equal(t, "double\t1.5", lines[2])
	assert.Equal(t, "string\t\"word\"\tlen=4\thash="+strconv.FormatUint(tagval.HashString("word"), 10), lines[3])
}

func TestConcat(t *testing.T) {
	out, err := run(t, "", "concat", "Hello, ", "world")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world\n", out)

	_, err = run(t, "", "concat", "a", "1")
	require.ErrorIs(t, err, tagval.ErrIncorrectType)
	tagval.Reset()
}

func TestEq(t *testing.T) {
	out, err := run(t, "", "eq", "abc", "abc")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "", "eq", "abc", "abcd")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, err = run(t, "", "eq", "--fast", `"x"`, "x")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "", "eq", "1", "1.0")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	_, err = run(t, "", "eq", "1")
	require.Error(t, err)
}

func TestMinMaxSort(t *testing.T) {
	out, err := run(t, "", "min", "--", "4", "-2", "9")
	require.NoError(t, err)
	assert.Equal(t, "-2\n", out)

	out, err = run(t, "", "max", "pear", "apple")
	require.NoError(t, err)
	assert.Equal(t, "pear\n", out)

	out, err = run(t, "", "sort", "3", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)

	_, err = run(t, "", "min", "true", "false")
	require.ErrorIs(t, err, tagval.ErrNotComparable)
	tagval.Reset()
}

func TestFileInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "values.json")
	require.NoError(t, os.WriteFile(path, []byte(`[2.5, 0.5, 1.5]`), 0o644))

	out, err := run(t, "", "sort", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "0.5\n1.5\n2.5\n", out)

	out, err = run(t, `["a", "b"]`, "concat", "-f", "-")
	require.NoError(t, err)
	assert.Equal(t, "ab\n", out)
}

func TestCBORInput(t *testing.T) {
	data, err := cbor.Marshal([]any{int64(5), int64(3)})
	require.NoError(t, err)
	out, err := run(t, string(data), "min", "--format", "cbor", "--file", "-")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	_, err = run(t, "", "min", "--format", "cbor", "1")
	require.Error(t, err)
}

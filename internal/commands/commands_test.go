package commands

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	args, ok := Parse("cmd grid -on")
	require.True(t, ok)
	assert.Equal(t, []string{"grid", "-on"}, args)

	args, ok = Parse("cmd ")
	require.True(t, ok)
	assert.Nil(t, args)

	_, ok = Parse("hello world")
	assert.False(t, ok)

	// Prefix is case-sensitive and needs the trailing space.
	_, ok = Parse("CMD grid")
	assert.False(t, ok)
	_, ok = Parse("cmd")
	assert.False(t, ok)
}

func TestExecuteRunsCommandWithFlags(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("speed", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	v := fs.Float64("v", 0, "")
	var got float64
	r.Register("speed", fs, func() error {
		got = *v
		return nil
	})

	err := r.Execute([]string{"speed", "-v", "2.5"})

	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, 1e-9)
}

func TestExecuteUnknownCommand(t *testing.T) {
	r := NewRegistry()
	r.Register("grid", flag.NewFlagSet("grid", flag.ContinueOnError), func() error { return nil })

	err := r.Execute([]string{"nope"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
	assert.Contains(t, err.Error(), "grid")
}

func TestExecuteEmptyArgs(t *testing.T) {
	r := NewRegistry()

	err := r.Execute(nil)

	assert.Error(t, err)
}

func TestExecutePropagatesRunError(t *testing.T) {
	r := NewRegistry()
	want := errors.New("boom")
	r.Register("fail", flag.NewFlagSet("fail", flag.ContinueOnError), func() error { return want })

	err := r.Execute([]string{"fail"})

	assert.ErrorIs(t, err, want)
}

func TestNamesSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"vsync", "grid", "fps"} {
		r.Register(name, flag.NewFlagSet(name, flag.ContinueOnError), func() error { return nil })
	}

	assert.Equal(t, []string{"fps", "grid", "vsync"}, r.Names())
}

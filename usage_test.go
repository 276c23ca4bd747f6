package argparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsage(t *testing.T) {
	t.Parallel()

	expected := "Test Parser, Tests arguments\n" +
		"Usage: -h for help:\n" +
		"\n" +
		" Options:\n" +
		"    -a <some> :\n" +
		"\t This is the a flag\n" +
		"    -b <some> <thing> :\n" +
		"\t This is the b flag\n" +
		"    -c <some> :\n" +
		"\t This is the c flag\n" +
		"    -d :\n" +
		"\t This is the d flag\n" +
		"\n" +
		" Arguments:\n" +
		"    foo :\n" +
		"\t This is the foo argument\n" +
		"    bar :\n" +
		"\t This is the bar argument\n"

	require.Equal(t, expected, getTestSpec().Usage())
}

func TestUsageIsDeterministic(t *testing.T) {
	t.Parallel()

	spec := getTestSpec()
	first := spec.Usage()
	for i := 0; i < 5; i++ {
		require.Equal(t, first, spec.Usage())
	}
}

func TestUsageOmitsEmptyBlocks(t *testing.T) {
	t.Parallel()

	t.Run("no flags and no arguments", func(t *testing.T) {
		t.Parallel()
		spec := NewParserSpec("Empty", "has nothing", nil, nil)
		require.Equal(t, "Empty, has nothing\nUsage: -h for help:\n\n", spec.Usage())
	})

	t.Run("flags only", func(t *testing.T) {
		t.Parallel()
		spec := NewParserSpec("FlagsOnly", "flags, no arguments",
			[]Flag{NewFlag("v", "verbose output")}, nil)
		usage := spec.Usage()
		require.Contains(t, usage, " Options:\n")
		require.Contains(t, usage, "    -v :\n\t verbose output\n")
		require.NotContains(t, usage, " Arguments:")
	})

	t.Run("arguments only", func(t *testing.T) {
		t.Parallel()
		spec := NewParserSpec("ArgsOnly", "arguments, no flags",
			nil, []Argument{NewArgument("foo", "the foo argument")})
		usage := spec.Usage()
		require.Contains(t, usage, " Arguments:\n")
		require.Contains(t, usage, "    foo :\n\t the foo argument\n")
		require.NotContains(t, usage, " Options:")
	})
}

func TestUsageRendersDeclarationOrder(t *testing.T) {
	t.Parallel()

	spec := NewParserSpec("Ordered", "checks ordering", nil, nil).
		WithFlags(NewFlag("z", "last letter"), NewFlag("a", "first letter")).
		WithArguments(NewArgument("zeta", "last"), NewArgument("alpha", "first"))

	usage := spec.Usage()
	require.Less(t, indexOf(t, usage, "-z"), indexOf(t, usage, "-a"))
	require.Less(t, indexOf(t, usage, "zeta"), indexOf(t, usage, "alpha"))
}

func indexOf(t *testing.T, s, substr string) int {
	t.Helper()
	idx := strings.Index(s, substr)
	require.GreaterOrEqual(t, idx, 0)
	return idx
}

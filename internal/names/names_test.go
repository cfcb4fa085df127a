package names

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSynthetic(t *testing.T) {
	list, err := Resolve("", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, list)

	list, err = Resolve("", 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestResolveFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genotypes.txt")
	require.NoError(t, os.WriteFile(path, []byte("geno1\ngeno2\ngeno2\n\ngeno3\n"), 0o644))

	// Count is ignored when a file is given.
	list, err := Resolve(path, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"geno1", "geno2", "geno2", "", "geno3"}, list)
}

func TestReadHandlesCRLFAndMissingTrailingNewline(t *testing.T) {
	list, err := Read(strings.NewReader("A\r\nB\r\nC"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, list)

	list, err = Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestResolveMissingFile(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "nope.txt"), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadSplitsOnBareCarriageReturn(t *testing.T) {
	list, err := Read(strings.NewReader("A\rB\rC\r"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, list)

	// Mixed terminators, and a blank line between two breaks.
	list, err = Read(strings.NewReader("A\r\rB\nC\r\nD"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "", "B", "C", "D"}, list)
}

func TestReadLongLine(t *testing.T) {
	long := strings.Repeat("g", 70000)

	list, err := Read(strings.NewReader("a\n" + long + "\nb\n"))
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0])
	assert.Len(t, list[1], 70000)
	assert.Equal(t, "b", list[2])
}

func TestSplitLinesUnicodeBoundaries(t *testing.T) {
	assert.Equal(t, []string{"x", "y", "z", "w", "v"}, SplitLines("x\u2028y\fz\u0085w\vv"))
	assert.Equal(t, []string{"", ""}, SplitLines("\n\n"))
	assert.Equal(t, []string{"ünï"}, SplitLines("ünï\r\n"))
	assert.Empty(t, SplitLines(""))
}

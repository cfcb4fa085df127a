package project

import (
	"os"
	"path/filepath"
	"testing"

	"cluster-splitter/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "version": 1,
  "image": "tray.png",
  "contours": [
    [{"x": 1, "y": 1}, {"x": 4, "y": 1}, {"x": 4, "y": 4}],
    []
  ],
  "groups": [[0], [1, 0]]
}`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clusters.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, f.Version)
	require.Len(t, f.Contours, 2)
	assert.Equal(t, geometry.PointInt{X: 4, Y: 4}, f.Contours[0][2])
	assert.Empty(t, f.Contours[1])
	assert.Equal(t, []geometry.ClusterGroup{{0}, {1, 0}}, f.Groups)
	assert.Equal(t, filepath.Join(dir, "tray.png"), f.GetImagePath(path))
}

func TestGetImagePath(t *testing.T) {
	f := &File{}
	assert.Equal(t, "", f.GetImagePath("/data/c.json"))

	f.ImagePath = "/abs/img.png"
	assert.Equal(t, "/abs/img.png", f.GetImagePath("/data/c.json"))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"groups": "nope"}`), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse cluster file")
}

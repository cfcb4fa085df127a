package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestToMatIsBGR(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.SetRGBA(2, 1, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	mat := ToMat(src)
	defer mat.Close()

	assert.Equal(t, 2, mat.Rows())
	assert.Equal(t, 3, mat.Cols())
	assert.Equal(t, uint8(50), mat.GetUCharAt(1, 6))
	assert.Equal(t, uint8(100), mat.GetUCharAt(1, 7))
	assert.Equal(t, uint8(200), mat.GetUCharAt(1, 8))
}

func TestLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plants.png")
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(1, 2, color.RGBA{R: 9, G: 8, B: 7, A: 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	mat, err := Load(path)
	require.NoError(t, err)
	defer mat.Close()

	assert.Equal(t, 4, mat.Rows())
	assert.Equal(t, uint8(7), mat.GetUCharAt(2, 3))
	assert.Equal(t, uint8(9), mat.GetUCharAt(2, 5))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	junk := filepath.Join(dir, "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0o644))
	_, err = Load(junk)
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestFileWriter(t *testing.T) {
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 128, 255, 0), 8, 8, gocv.MatTypeCV8UC3)
	defer img.Close()

	path := filepath.Join(t.TempDir(), "nested", "out_a_p0.jpg")
	require.NoError(t, FileWriter{MakeDirs: true}.Write(path, img))
	_, err := os.Stat(path)
	assert.NoError(t, err)

	missing := filepath.Join(t.TempDir(), "no-such-dir", "out.jpg")
	err = FileWriter{}.Write(missing, img)
	assert.ErrorIs(t, err, ErrWriteFailed)
}

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBaseName(t *testing.T) {
	img := filepath.Join("scans", "tray_04.v2.tiff")

	got, err := resolveBaseName("", false, img)
	require.NoError(t, err)
	assert.Equal(t, "tray_04.v2", got)

	got, err = resolveBaseName("run.2024", false, img)
	require.NoError(t, err)
	assert.Equal(t, "run.2024", got)

	got, err = resolveBaseName("", true, img)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolveBaseNameRejectsBaseWithTimestamp(t *testing.T) {
	_, err := resolveBaseName("plant1", true, "plant1.png")
	assert.ErrorIs(t, err, errBaseAndTimestamp)
}

package fftcache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWisdomFileRoundTrip(t *testing.T) {
	defer Cleanup()

	// A thorough-tier build measures strategies and records wisdom.
	h, err := New(48, Thorough)
	require.NoError(t, err)
	h.Destroy()

	require.NotZero(t, WisdomLen(), "thorough planning recorded no wisdom")

	path := filepath.Join(t.TempDir(), "wisdom.yaml")
	require.NoError(t, ExportWisdom(path))

	// Cleanup drops the cache; importing the export restores it.
	Cleanup()
	assert.Zero(t, WisdomLen())

	require.NoError(t, ImportWisdom(path))
	assert.NotZero(t, WisdomLen(), "import restored no entries")
}

func TestImportWisdomMissingFile(t *testing.T) {
	err := ImportWisdom(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

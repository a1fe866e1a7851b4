package emotive

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultEngine(t *testing.T) {
	e, err := New(Options{})
	require.NoError(t, err)
	assert.Len(t, e.Gestures(), 31)

	_, err = e.Start("bounce", nil)
	require.NoError(t, err)
	assert.True(t, e.IsActive("bounce"))

	out := e.Tick(time.Now())
	assert.GreaterOrEqual(t, out.OffsetY, 0.0)
}

func TestNewWithOverlayFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gestures.yaml")
	overlay := "gestures:\n  bounce:\n    params:\n      amplitude: 45\n"
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o644))

	e, err := New(Options{OverlayPath: path})
	require.NoError(t, err)
	_, err = e.Start("bounce", nil)
	require.NoError(t, err)
}

func TestNewWithMissingOverlayFails(t *testing.T) {
	_, err := New(Options{OverlayPath: filepath.Join(t.TempDir(), "absent.yaml")})
	require.Error(t, err)
}

func TestEnginesAreIndependent(t *testing.T) {
	a, err := New(Options{})
	require.NoError(t, err)
	b, err := New(Options{})
	require.NoError(t, err)

	_, err = a.Start("sway", nil)
	require.NoError(t, err)
	assert.True(t, a.IsActive("sway"))
	assert.False(t, b.IsActive("sway"))
}

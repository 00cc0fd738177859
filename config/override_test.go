package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOverrideFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trapland.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadOverridesMissingFileKeepsDefaults(t *testing.T) {
	speed := Player.MoveSpeed

	require.NoError(t, LoadOverrides(filepath.Join(t.TempDir(), "absent.yaml")))

	assert.Equal(t, speed, Player.MoveSpeed)
}

func TestLoadOverridesAppliesSetValuesOnly(t *testing.T) {
	origSpeed := Player.MoveSpeed
	origGravity := Player.Gravity
	defer func() {
		Player.MoveSpeed = origSpeed
		Player.Gravity = origGravity
	}()

	path := writeOverrideFile(t, "player:\n  moveSpeed: 123.5\n")
	require.NoError(t, LoadOverrides(path))

	assert.Equal(t, 123.5, Player.MoveSpeed)
	assert.Equal(t, origGravity, Player.Gravity, "unset values keep their defaults")
}

func TestLoadOverridesClampsDt(t *testing.T) {
	origDt := C.Dt
	defer func() { C.Dt = origDt }()

	path := writeOverrideFile(t, "game:\n  dt: 0.25\n")
	require.NoError(t, LoadOverrides(path))

	assert.Equal(t, C.MaxDt, C.Dt, "a runaway step is clamped to MaxDt")

	path = writeOverrideFile(t, "game:\n  dt: 0.02\n")
	require.NoError(t, LoadOverrides(path))

	assert.Equal(t, 0.02, C.Dt)
}

func TestLoadOverridesRejectsMalformedFile(t *testing.T) {
	path := writeOverrideFile(t, "player: [not a map\n")

	assert.Error(t, LoadOverrides(path))
}

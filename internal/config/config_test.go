package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	body := `
player:
  speed: 300
  attack_cooldown: 150ms
mob:
  aggro: 4s
fps: 12
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 300.0, cfg.Player.Speed)
	assert.Equal(t, 150*time.Millisecond, cfg.Player.AttackCooldown)
	assert.Equal(t, 4*time.Second, cfg.Mob.Aggro)
	assert.Equal(t, 12.0, cfg.FPS)

	// Untouched keys keep their defaults.
	assert.Equal(t, 465.0, cfg.World.GroundY)
	assert.Equal(t, 2, cfg.Player.BaseDamage)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mob:\n  wander_min: 5s\n  wander_max: 1s\n"), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

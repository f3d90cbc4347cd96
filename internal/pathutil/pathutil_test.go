package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitializeAt(t *testing.T) {
	t.Setenv(envSuffix, "")

	dir := t.TempDir()

	InitializeAt(dir)

	assert.Equal(t, filepath.Join(dir, "config.yml"), ConfigFilePath())
	assert.Equal(t, filepath.Join(dir, "anuloma.db"), DBFilePath())
	assert.Equal(t, filepath.Join(dir, "log", "anuloma.log"), LogFilePath())
	assert.Equal(t, filepath.Join(dir, "assets"), AssetsDir())
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv(envSuffix, "test")

	dir := t.TempDir()

	InitializeAt(dir)

	assert.Equal(t, filepath.Join(dir, "config_test.yml"), ConfigFilePath())
	assert.Equal(t, filepath.Join(dir, "anuloma_test.db"), DBFilePath())
}

func TestStripExtension(t *testing.T) {
	assert.Equal(t, "birds_morning", StripExtension("birds_morning.ogg"))
	assert.Equal(t, "rain", StripExtension("rain"))
}

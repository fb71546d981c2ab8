package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kenchrcum/udcore-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
hardware:
  enable_aes_ni: true
  enable_armv8_aes: false
backend:
  provider: minio
  region: us-east-1
  endpoint: http://localhost:9000
worker_pool:
  thread_count: 4
geo_zone:
  registry_path: ""
`

func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadParsesFields(t *testing.T) {
	path := writeConfig(t, t.TempDir(), sample)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Hardware.EnableAESNI)
	assert.Equal(t, "minio", cfg.Backend.Provider)
	assert.Equal(t, 4, cfg.WorkerPool.ThreadCount)
}

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, sample)

	w, err := config.NewWatcher(path, nil)
	require.NoError(t, err)
	defer w.Close()

	changed := make(chan *config.Config, 1)
	w.OnChange(func(c *config.Config) { changed <- c })

	updated := sample + "\n"
	require.NoError(t, os.WriteFile(path, []byte(updated+"# touch\n"), 0o644))

	select {
	case c := <-changed:
		assert.Equal(t, "minio", c.Backend.Provider)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never observed the file change")
	}
}

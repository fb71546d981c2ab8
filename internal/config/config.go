// Package config loads the runtime configuration from a YAML file and
// watches it for changes, handing each reloaded Config to subscribers so
// long-running hosts can apply adjustments without a restart.
package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// HardwareConfig controls AES hardware-acceleration usage.
type HardwareConfig struct {
	EnableAESNI    bool `yaml:"enable_aes_ni"`
	EnableARMv8AES bool `yaml:"enable_armv8_aes"`
}

// BackendConfig describes how to reach an S3-compatible object store.
type BackendConfig struct {
	Provider  string `yaml:"provider"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// WorkerPoolConfig sizes the worker pool driving background file and
// crypto work.
type WorkerPoolConfig struct {
	ThreadCount int `yaml:"thread_count"`
}

// GeoZoneConfig points at an optional supplementary geo-zone JSON
// registry, loaded in addition to the built-in ellipsoid/datum tables.
type GeoZoneConfig struct {
	RegistryPath string `yaml:"registry_path"`
}

// Config is the root configuration document.
type Config struct {
	Hardware   HardwareConfig   `yaml:"hardware"`
	Backend    BackendConfig    `yaml:"backend"`
	WorkerPool WorkerPoolConfig `yaml:"worker_pool"`
	GeoZone    GeoZoneConfig    `yaml:"geo_zone"`
}

// Load reads and parses the YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// Watcher hot-reloads a Config whenever its backing file changes on disk,
// notifying subscribers via OnChange. It logs with structured logrus
// fields around the watched file, as the driver and HTTP middleware do.
type Watcher struct {
	mu       sync.RWMutex
	current  *Config
	path     string
	logger   *logrus.Logger
	watcher  *fsnotify.Watcher
	onChange []func(*Config)
}

// NewWatcher loads path once and begins watching it for further writes.
func NewWatcher(path string, logger *logrus.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching config %s: %w", path, err)
	}

	w := &Watcher{current: cfg, path: path, logger: logger, watcher: fw}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				w.logger.WithError(err).WithFields(logrus.Fields{"path": w.path}).
					Warn("config reload failed, keeping previous configuration")
				continue
			}
			w.mu.Lock()
			w.current = cfg
			subs := append([]func(*Config){}, w.onChange...)
			w.mu.Unlock()

			w.logger.WithFields(logrus.Fields{"path": w.path}).Info("configuration reloaded")
			for _, fn := range subs {
				fn(cfg)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Warn("config watcher error")
		}
	}
}

// Current returns the most recently loaded configuration.
func (w *Watcher) Current() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// OnChange registers a callback invoked after every successful reload.
func (w *Watcher) OnChange(fn func(*Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, fn)
}

// Close stops watching the config file.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

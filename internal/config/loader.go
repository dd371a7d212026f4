package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Loader reads the YAML configuration file and watches it for changes.
// With an empty path, the built-in defaults are used and Watch is a
// no-op.
type Loader struct {
	path    string
	mu      sync.RWMutex
	current *Config
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string) (*Loader, error) {
	l := &Loader{path: path}

	cfg, err := l.load()
	if err != nil {
		return nil, err
	}

	l.current = cfg
	return l, nil
}

// Config returns the latest configuration.
func (l *Loader) Config() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// load reads and validates the configuration file, layering it over the
// defaults.
func (l *Loader) load() (*Config, error) {
	cfg := Default()

	if l.path != "" {
		content, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("could not read configuration file: %w", err)
		}

		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("could not parse configuration file %s: %w", l.path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Watch starts a background goroutine that reloads the configuration
// when the file changes. A reload that fails keeps the previous
// configuration. Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	if l.path == "" {
		return func() {}, nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}

	// Editors and orchestrators often replace the file by renaming a
	// temporary file over it, which silently ends a watch on the file
	// itself. Watching the directory and filtering by name keeps
	// reloads working across such saves.
	if err := w.Add(filepath.Dir(l.path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("config watcher add %s: %w", l.path, err)
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(l.path) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}

				cfg, err := l.load()
				if err != nil {
					log.Warn().Err(err).Msg("configuration reload failed, keeping previous configuration")
					continue
				}

				l.mu.Lock()
				l.current = cfg
				l.mu.Unlock()
				log.Info().Str("path", l.path).Msg("configuration reloaded")

			case <-w.Errors:
				// Watcher errors are not actionable, the next write
				// triggers a regular reload.

			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }, nil
}

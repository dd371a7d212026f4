package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/paisaflow/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	l, err := config.NewLoader("")
	require.Nil(t, err)

	cfg := l.Config()
	assert.Equal(t, "INR", cfg.BaseCurrency)
	assert.Equal(t, "Asia/Kolkata", cfg.Timezone)
	assert.Equal(t, 83.0, cfg.USDToBaseRate)
	assert.Equal(t, "Date", cfg.Columns.Date[0], "date candidates must keep their priority order")
	assert.Equal(t, "Food", cfg.Categories[0].Name, "category rules must keep their priority order")

	_, err = cfg.Location()
	assert.Nil(t, err)
}

func TestLoadOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yml")
	content := []byte("timezone: Europe/Berlin\nbase_currency: EUR\nusd_to_base_rate: 0.9\n")
	require.Nil(t, os.WriteFile(path, content, 0o600))

	l, err := config.NewLoader(path)
	require.Nil(t, err)

	cfg := l.Config()
	assert.Equal(t, "EUR", cfg.BaseCurrency)
	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
	assert.Equal(t, 0.9, cfg.USDToBaseRate)

	// Sections not present in the file keep their defaults
	assert.NotEmpty(t, cfg.Columns.Date)
	assert.NotEmpty(t, cfg.Categories)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		message string
	}{
		{"invalid timezone", "timezone: Not/AZone\n", "invalid timezone"},
		{"empty base currency", "base_currency: \"\"\n", "base_currency must not be empty"},
		{"negative rate", "usd_to_base_rate: -1\n", "usd_to_base_rate must be positive"},
		{"not yaml", ": nope\n  - ]", "could not parse configuration file"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.yml")
			require.Nil(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := config.NewLoader(path)
			require.NotNil(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestWatchReloadOnRename(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.Nil(t, os.WriteFile(path, []byte("base_currency: EUR\n"), 0o600))

	l, err := config.NewLoader(path)
	require.Nil(t, err)

	stop, err := l.Watch()
	require.Nil(t, err)
	defer stop()

	// Replace the file by atomic rename, the way editors save
	next := filepath.Join(dir, "config.yml.tmp")
	require.Nil(t, os.WriteFile(next, []byte("base_currency: CHF\n"), 0o600))
	require.Nil(t, os.Rename(next, path))

	assert.Eventually(t, func() bool {
		return l.Config().BaseCurrency == "CHF"
	}, 5*time.Second, 10*time.Millisecond)

	// A reload that fails validation keeps the previous configuration
	require.Nil(t, os.WriteFile(path, []byte("usd_to_base_rate: -1\n"), 0o600))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, "CHF", l.Config().BaseCurrency)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.NewLoader(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "could not read configuration file")
}

package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpacahq/jpholiday/utils/log"
)

const sampleConfig = `
timezone: UTC
log_level: debug
format: json
workers: 8
market:
  open_time: "09:00:00"
  close_time: "15:00:00"
  closed_days:
    - 2024/12/31
    - 2025/01/02
`

func TestParseConfig(t *testing.T) {
	// avoid t.Parallel() as env vars are used.
	c, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "UTC", c.Timezone.String())
	assert.Equal(t, log.DEBUG, c.LogLevel)
	assert.Equal(t, "json", c.Format)
	assert.Equal(t, 8, c.Workers)
	assert.Equal(t, "09:00:00", c.Market["open_time"])
	assert.Len(t, c.Market["closed_days"], 2)
}

func TestParseConfigDefaults(t *testing.T) {
	c, err := ParseConfig([]byte(""))
	require.NoError(t, err)

	assert.Equal(t, defaultTimezone, c.Timezone.String())
	assert.Equal(t, log.INFO, c.LogLevel)
	assert.Equal(t, "text", c.Format)
	assert.Equal(t, defaultWorkers, c.Workers)
	assert.NotNil(t, c.Market)
}

func TestParseConfigErrors(t *testing.T) {
	tests := map[string]string{
		"ng/ broken yaml":      "timezone: [",
		"ng/ unknown timezone": "timezone: Mars/Olympus_Mons",
	}
	for name, data := range tests {
		data := data
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestParseConfigNegativeWorkers(t *testing.T) {
	c, err := ParseConfig([]byte("workers: -3"))
	require.NoError(t, err)
	assert.Equal(t, defaultWorkers, c.Workers)
}

func TestParseConfigEnvOverride(t *testing.T) {
	// --- given ---
	_ = os.Setenv(envTimezone, "UTC")
	_ = os.Setenv(envLogLevel, "error")
	defer func() {
		_ = os.Unsetenv(envTimezone)
		_ = os.Unsetenv(envLogLevel)
	}()

	// --- when ---
	c, err := ParseConfig([]byte("timezone: Asia/Tokyo\nlog_level: debug\n"))

	// --- then ---
	require.NoError(t, err)
	assert.Equal(t, "UTC", c.Timezone.String())
	assert.Equal(t, log.ERROR, c.LogLevel)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	c, err := LoadConfig(filepath.Join(dir, "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, defaultWorkers, c.Workers)

	path := filepath.Join(dir, "jpholiday.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))
	c, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, c.Workers)
}

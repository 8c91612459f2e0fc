package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/islands/config"
)

// noFlags mirrors the flag defaults used by main.
func noFlags() options {
	return options{prob: -1}
}

// TestRun_Map reports and lists the islands of a text map.
func TestRun_Map(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte("##..\n...#\n#...\n"), 0o600))

	o := noFlags()
	o.mapPath = path
	o.list = true

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(o, &stdout, &stderr))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "found 3 islands in "), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], " in the 4 x 3 map!"), lines[0])
	assert.Equal(t, "land: 4 cells (33.3%)", lines[1])
	assert.Equal(t, "#0 [(0,0) (1,0)] 2x1", lines[3])
	assert.Equal(t, "#1 [(3,1) (3,1)] 1x1", lines[4])
	assert.Equal(t, "#2 [(0,2) (0,2)] 1x1", lines[5])
	assert.Contains(t, stderr.String(), "discovery done")
}

// TestRun_Random runs a small seeded random map with debug logging.
func TestRun_Random(t *testing.T) {
	o := noFlags()
	o.width, o.height, o.seed = 50, 40, 3
	o.logLevel = "debug"

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(o, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "in the 50 x 40 map!")
	assert.Contains(t, stderr.String(), "grid ready")
}

// TestLoadConfig_Overrides applies flags on top of the YAML file.
func TestLoadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "islands.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 10\nheight: 20\nseed: 5\nworklist: queue\n"), 0o600))

	o := noFlags()
	o.configPath = path
	o.height = 30
	o.prob = 0.5
	o.conn = 4

	cfg, err := loadConfig(o)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
	assert.Equal(t, 0.5, cfg.Probability())
	assert.Equal(t, int64(5), cfg.Seed)
	assert.Equal(t, 4, cfg.Connectivity)
	assert.Equal(t, "queue", cfg.WorkList)
}

// TestLoadConfig_Invalid surfaces validation errors from flags and files.
func TestLoadConfig_Invalid(t *testing.T) {
	o := noFlags()
	o.conn = 6
	_, err := loadConfig(o)
	assert.ErrorIs(t, err, config.ErrInvalidOption)

	o = noFlags()
	o.configPath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = loadConfig(o)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var stdout, stderr bytes.Buffer
	o = noFlags()
	o.prob = 2
	assert.ErrorIs(t, run(o, &stdout, &stderr), config.ErrInvalidProbability)
}

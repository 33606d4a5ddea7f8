package logo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, 16384, cfg.GetInt("memory.pool_cells"))
	assert.Equal(t, DefaultMaxGlobalVariables, cfg.GetInt("variables.max_globals"))
	assert.Equal(t, DefaultMaxFrameDepth, cfg.GetInt("frames.max_depth"))
	assert.False(t, cfg.GetBool("eval.use_vm"))
	assert.Equal(t, 1024, cfg.GetInt("repl.max_line_length"))
	assert.Equal(t, 8192, cfg.GetInt("repl.max_proc_buffer"))
}

func TestConfigSetOverridesDefault(t *testing.T) {
	cfg := NewConfig()
	cfg.SetInt("memory.pool_cells", 4096)
	assert.Equal(t, 4096, cfg.GetInt("memory.pool_cells"))
}

func TestConfigSetString(t *testing.T) {
	cfg := NewConfig()
	cfg.SetString("host.device_name", "turtle-1")
	assert.Equal(t, "turtle-1", cfg.GetString("host.device_name"))
}

func TestConfigGetMissingKeyPanics(t *testing.T) {
	cfg := NewConfig()
	assert.Panics(t, func() { cfg.GetInt("does.not.exist") })
}

func TestConfigGetWrongTypePanics(t *testing.T) {
	cfg := NewConfig()
	assert.Panics(t, func() { cfg.GetString("memory.pool_cells") })
}

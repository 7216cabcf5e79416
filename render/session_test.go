package render

import (
	"strings"
	"testing"

	"github.com/archmate/archmate/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutologinOverride(t *testing.T) {
	out, err := AutologinOverride("alice")
	require.NoError(t, err)
	assert.Contains(t, out, "[Service]")
	assert.Contains(t, out, "--autologin alice")
	assert.Contains(t, out, "%I")
	// the empty assignment that clears the stock ExecStart comes first
	first := strings.Index(out, "ExecStart=\n")
	second := strings.Index(out, "ExecStart=-/sbin/agetty")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
}

func TestProfileSnippet(t *testing.T) {
	snippet := ProfileSnippet()
	assert.Contains(t, snippet, ProfileMarker())
	assert.Contains(t, snippet, "/dev/tty1")
	assert.Contains(t, snippet, "uwsm start")
}

func TestHyprlandConf(t *testing.T) {
	cfg := &config.Config{Keymap: "us"}
	conf := HyprlandConf(cfg)
	assert.Contains(t, conf, "kb_layout = us")
	assert.Contains(t, conf, "autostart.sh")
}

func TestAutostartScript(t *testing.T) {
	assert.True(t, strings.HasPrefix(AutostartScript(), "#!/bin/sh\n"))
}

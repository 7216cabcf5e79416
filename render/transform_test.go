package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mkinitcpioSample = `# vim:set ft=sh
MODULES=()
BINARIES=()
FILES=()
HOOKS=(base udev autodetect modconf kms keyboard keymap consolefont block filesystems fsck)
`

func TestWithEncryptHook(t *testing.T) {
	out, err := WithEncryptHook(mkinitcpioSample)
	require.NoError(t, err)
	assert.Contains(t, out, "HOOKS=(base udev autodetect modconf kms keyboard keymap consolefont block encrypt filesystems fsck)")
	// the rest of the file is untouched
	assert.Contains(t, out, "MODULES=()")

	again, err := WithEncryptHook(out)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestWithEncryptHookAddsKeyboard(t *testing.T) {
	out, err := WithEncryptHook("HOOKS=(base udev block filesystems fsck)\n")
	require.NoError(t, err)
	assert.Equal(t, "HOOKS=(base udev block keyboard encrypt filesystems fsck)\n", out)
}

func TestWithPlymouthHook(t *testing.T) {
	out, err := WithPlymouthHook(mkinitcpioSample)
	require.NoError(t, err)
	assert.Contains(t, out, "HOOKS=(base udev plymouth autodetect")

	again, err := WithPlymouthHook(out)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestTransformWithoutHooksLine(t *testing.T) {
	_, err := WithEncryptHook("MODULES=()\n")
	require.Error(t, err)
}

func TestWithKernelArg(t *testing.T) {
	entry := "title   Arch Linux\nlinux   /vmlinuz-linux\noptions root=/dev/mapper/cryptroot rw quiet\n"

	out, err := WithKernelArg(entry, "splash")
	require.NoError(t, err)
	assert.Contains(t, out, "options root=/dev/mapper/cryptroot rw quiet splash\n")

	again, err := WithKernelArg(out, "splash")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestWithKernelArgWithoutOptionsLine(t *testing.T) {
	_, err := WithKernelArg("title   Arch Linux\n", "splash")
	require.Error(t, err)
}

func TestWithSnapperRetention(t *testing.T) {
	conf := `# subvolume to snapshot
SUBVOLUME="/"
TIMELINE_CREATE="no"
TIMELINE_LIMIT_HOURLY="10"
`
	out := WithSnapperRetention(conf)
	assert.Contains(t, out, `TIMELINE_CREATE="yes"`)
	assert.NotContains(t, out, `TIMELINE_CREATE="no"`)
	assert.Contains(t, out, `TIMELINE_LIMIT_HOURLY="5"`)
	assert.Contains(t, out, `TIMELINE_LIMIT_DAILY="7"`)
	assert.Contains(t, out, `ALLOW_GROUPS="wheel"`)
	// untouched keys survive
	assert.Contains(t, out, `SUBVOLUME="/"`)

	assert.Equal(t, out, WithSnapperRetention(out))
}

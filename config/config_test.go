package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestPartitionNaming(t *testing.T) {
	c := Config{Disk: "/dev/vda"}
	assert.Equal(t, "/dev/vda1", c.EFIPartition())
	assert.Equal(t, "/dev/vda2", c.RootPartition())

	c = Config{Disk: "/dev/nvme0n1"}
	assert.Equal(t, "/dev/nvme0n1p1", c.EFIPartition())
	assert.Equal(t, "/dev/nvme0n1p2", c.RootPartition())

	c = Config{Disk: "/dev/mmcblk0"}
	assert.Equal(t, "/dev/mmcblk0p1", c.EFIPartition())
	assert.Equal(t, "/dev/mmcblk0p2", c.RootPartition())

	c = Config{Disk: "/dev/loop0"}
	assert.Equal(t, "/dev/loop0p2", c.Partition(2))

	c = Config{Disk: "/dev/sda"}
	assert.Equal(t, "/dev/sda2", c.Partition(2))
}

func TestBasePackages(t *testing.T) {
	c := Config{CPUVendor: CPUIntel}
	assert.Contains(t, c.BasePackages(), "intel-ucode")
	assert.NotContains(t, c.BasePackages(), "amd-ucode")

	c = Config{CPUVendor: CPUAmd}
	assert.Contains(t, c.BasePackages(), "amd-ucode")
	assert.NotContains(t, c.BasePackages(), "intel-ucode")

	c = Config{CPUVendor: CPUNone}
	assert.NotContains(t, c.BasePackages(), "amd-ucode")
	assert.NotContains(t, c.BasePackages(), "intel-ucode")
	assert.Contains(t, c.BasePackages(), "base")
}

func TestGPUPackages(t *testing.T) {
	c := Config{GPUVendor: GPUNvidia}
	assert.Contains(t, c.GPUPackages(), "nvidia")

	c = Config{GPUVendor: GPUNone}
	assert.Empty(t, c.GPUPackages())
}

func TestFromYAMLDefaults(t *testing.T) {
	c, err := FromYAML([]byte("disk: /dev/vda\nusername: alice\n"))
	require.NoError(t, err)
	assert.Equal(t, "/dev/vda", c.Disk)
	assert.Equal(t, "alice", c.Username)
	assert.Equal(t, "archlinux", c.Hostname)
	assert.Equal(t, CPUNone, c.CPUVendor)
	assert.Equal(t, GPUNone, c.GPUVendor)
	assert.Equal(t, "en_US.UTF-8", c.Locale)
}

func TestFromYAMLUnknownField(t *testing.T) {
	_, err := FromYAML([]byte("disque: /dev/vda\n"))
	require.Error(t, err)
}

func TestFromYAMLOverridesDefaults(t *testing.T) {
	c, err := FromYAML([]byte("disk: /dev/vda\nusername: alice\nhostname: workstation\ncpuVendor: amd\n"))
	require.NoError(t, err)
	assert.Equal(t, "workstation", c.Hostname)
	assert.Equal(t, CPUAmd, c.CPUVendor)
}

func fakeBlockDevice(t *testing.T, exists bool) {
	t.Helper()
	orig := isBlockDevice
	isBlockDevice = func(string) bool { return exists }
	t.Cleanup(func() { isBlockDevice = orig })
}

func TestValidate(t *testing.T) {
	valid := Config{
		Disk:      "/dev/vda",
		Hostname:  "archlinux",
		Username:  "alice",
		Timezone:  "Europe/Helsinki",
		Locale:    "en_US.UTF-8",
		Keymap:    "us",
		CPUVendor: CPUNone,
		GPUVendor: GPUNone,
	}

	t.Run("valid", func(t *testing.T) {
		fakeBlockDevice(t, true)
		require.NoError(t, valid.Validate())
	})

	t.Run("disk is not a block device", func(t *testing.T) {
		fakeBlockDevice(t, false)
		require.Error(t, valid.Validate())
	})

	t.Run("invalid username", func(t *testing.T) {
		fakeBlockDevice(t, true)
		c := valid
		c.Username = "Alice"
		require.Error(t, c.Validate())
	})

	t.Run("vendor outside the enumerated set", func(t *testing.T) {
		fakeBlockDevice(t, true)
		c := valid
		c.GPUVendor = "matrox"
		require.Error(t, c.Validate())
	})

	t.Run("missing username", func(t *testing.T) {
		fakeBlockDevice(t, true)
		c := valid
		c.Username = ""
		require.Error(t, c.Validate())
	})
}

func TestValidateConfigure(t *testing.T) {
	c := Config{Username: "alice", GPUVendor: GPUAmd}
	require.NoError(t, c.ValidateConfigure())

	c.GPUVendor = "voodoo"
	require.Error(t, c.ValidateConfigure())
}

func TestValidUnixName(t *testing.T) {
	for _, name := range []string{"alice", "_svc", "a", "web-admin", "user2"} {
		assert.True(t, validUnixName(name), name)
	}
	for _, name := range []string{"", "Alice", "2user", "-dash", "a b", "root!"} {
		assert.False(t, validUnixName(name), name)
	}
}

func TestSecretRedaction(t *testing.T) {
	s := Secret("hunter2")
	assert.Equal(t, "[REDACTED]", s.String())
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%v", s))
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%s", s))
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%#v", s))
	assert.Equal(t, "hunter2", s.Value())

	out, err := yaml.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "hunter2")

	assert.Equal(t, "", Secret("").String())
}

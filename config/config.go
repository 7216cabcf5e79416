package config

import (
	"fmt"
	"path"

	"github.com/creasty/defaults"
	validator "github.com/go-playground/validator/v10"
	"golang.org/x/sys/unix"
)

// CPUVendor is the processor vendor used to pick a microcode package
type CPUVendor string

// GPUVendor is the graphics vendor used to pick a driver package set
type GPUVendor string

const (
	CPUAmd   CPUVendor = "amd"
	CPUIntel CPUVendor = "intel"
	CPUNone  CPUVendor = "none"

	GPUAmd    GPUVendor = "amd"
	GPUNvidia GPUVendor = "nvidia"
	GPUIntel  GPUVendor = "intel"
	GPUNone   GPUVendor = "none"
)

// CPUVendors lists the accepted cpu vendor choices
var CPUVendors = []string{string(CPUAmd), string(CPUIntel), string(CPUNone)}

// GPUVendors lists the accepted gpu vendor choices
var GPUVendors = []string{string(GPUAmd), string(GPUNvidia), string(GPUIntel), string(GPUNone)}

const (
	// MapperName is the device-mapper name the encrypted root is opened as
	MapperName = "cryptroot"
	// MapperPath is the block device exposed after cryptsetup open
	MapperPath = "/dev/mapper/" + MapperName
)

// Config describes one provisioning run. It is collected once before any
// phase executes and never mutated afterwards.
type Config struct {
	Disk      string    `yaml:"disk" validate:"required,blockdevice"`
	Hostname  string    `yaml:"hostname" default:"archlinux" validate:"required,hostname_rfc1123"`
	Username  string    `yaml:"username" validate:"required,unixname"`
	Timezone  string    `yaml:"timezone" default:"Europe/Helsinki" validate:"required"`
	Locale    string    `yaml:"locale" default:"en_US.UTF-8" validate:"required"`
	Keymap    string    `yaml:"keymap" default:"us" validate:"required"`
	CPUVendor CPUVendor `yaml:"cpuVendor" default:"none" validate:"required,oneof=amd intel none"`
	GPUVendor GPUVendor `yaml:"gpuVendor" default:"none" validate:"required,oneof=amd nvidia intel none"`

	// secrets are only ever collected interactively, never from a preseed file
	UserPassword   Secret `yaml:"-"`
	DiskPassphrase Secret `yaml:"-"`
}

// UnmarshalYAML sets in some sane defaults when unmarshaling the data from yaml
func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type config Config
	yc := (*config)(c)

	if err := unmarshal(yc); err != nil {
		return err
	}

	return defaults.Set(c)
}

// isBlockDevice is a package var so validation can be exercised without a
// real block device present.
var isBlockDevice = func(path string) bool {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return false
	}
	return st.Mode&unix.S_IFMT == unix.S_IFBLK
}

// Validate performs a configuration sanity check
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.RegisterValidation("blockdevice", func(fl validator.FieldLevel) bool {
		return isBlockDevice(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("unixname", func(fl validator.FieldLevel) bool {
		return validUnixName(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.Struct(c)
}

func validUnixName(s string) bool {
	if s == "" || len(s) > 32 {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r == '_':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}

// Partition returns the name of the n:th partition on the target disk.
// Devices whose name ends in a digit (nvme0n1, mmcblk0, loop0) use a "p"
// infix between the device name and the partition number, everything else
// appends the number directly.
func (c *Config) Partition(n int) string {
	base := path.Base(c.Disk)
	if last := rune(base[len(base)-1]); last >= '0' && last <= '9' {
		return fmt.Sprintf("%sp%d", c.Disk, n)
	}
	return fmt.Sprintf("%s%d", c.Disk, n)
}

// EFIPartition is the EFI system partition on the target disk
func (c *Config) EFIPartition() string {
	return c.Partition(1)
}

// RootPartition is the LUKS container partition on the target disk
func (c *Config) RootPartition() string {
	return c.Partition(2)
}

// basePackages is everything pacstrap installs regardless of hardware
var basePackages = []string{
	"base",
	"base-devel",
	"linux",
	"linux-firmware",
	"btrfs-progs",
	"cryptsetup",
	"networkmanager",
	"sudo",
	"vim",
	"git",
}

// BasePackages returns the pacstrap package set including the cpu vendor's
// microcode package
func (c *Config) BasePackages() []string {
	pkgs := make([]string, len(basePackages))
	copy(pkgs, basePackages)
	switch c.CPUVendor {
	case CPUAmd:
		pkgs = append(pkgs, "amd-ucode")
	case CPUIntel:
		pkgs = append(pkgs, "intel-ucode")
	}
	return pkgs
}

// GPUPackages returns the driver package set for the gpu vendor, empty for
// "none"
func (c *Config) GPUPackages() []string {
	switch c.GPUVendor {
	case GPUAmd:
		return []string{"mesa", "lib32-mesa", "vulkan-radeon", "lib32-vulkan-radeon"}
	case GPUNvidia:
		return []string{"nvidia", "nvidia-utils", "lib32-nvidia-utils", "nvidia-settings"}
	case GPUIntel:
		return []string{"mesa", "lib32-mesa", "vulkan-intel", "lib32-vulkan-intel"}
	default:
		return nil
	}
}

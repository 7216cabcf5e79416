// Package render produces the contents of every file the provisioner
// generates. Rendering is pure: given the same configuration the output is
// byte for byte identical, so all of it can be asserted in tests without
// touching the system.
package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/archmate/archmate/config"
	"github.com/google/uuid"
)

var bootEntryTemplate = template.Must(template.New("bootentry").Parse(`title   Arch Linux
linux   /vmlinuz-linux
{{- if .Microcode }}
initrd  /{{ .Microcode }}.img
{{- end }}
initrd  /initramfs-linux.img
options cryptdevice=UUID={{ .UUID }}:{{ .Mapper }} root=/dev/mapper/{{ .Mapper }} rootflags=subvol=@ rw quiet{{ if .Splash }} splash{{ end }}
`))

// BootEntry renders the systemd-boot entry for the encrypted root. The
// UUID is the LUKS container's, as reported by blkid.
func BootEntry(cfg *config.Config, luksUUID uuid.UUID, splash bool) (string, error) {
	var microcode string
	switch cfg.CPUVendor {
	case config.CPUAmd:
		microcode = "amd-ucode"
	case config.CPUIntel:
		microcode = "intel-ucode"
	}

	var buf bytes.Buffer
	err := bootEntryTemplate.Execute(&buf, struct {
		UUID      string
		Mapper    string
		Microcode string
		Splash    bool
	}{
		UUID:      luksUUID.String(),
		Mapper:    config.MapperName,
		Microcode: microcode,
		Splash:    splash,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render boot entry: %w", err)
	}
	return buf.String(), nil
}

// LoaderConf renders the systemd-boot loader configuration
func LoaderConf() string {
	return "default arch.conf\ntimeout 3\nconsole-mode max\neditor no\n"
}

// Hostname renders /etc/hostname
func Hostname(cfg *config.Config) string {
	return cfg.Hostname + "\n"
}

// Hosts renders /etc/hosts with the loopback names for the host
func Hosts(cfg *config.Config) string {
	return fmt.Sprintf("127.0.0.1\tlocalhost\n::1\t\tlocalhost\n127.0.1.1\t%s.localdomain %s\n", cfg.Hostname, cfg.Hostname)
}

// LocaleConf renders /etc/locale.conf
func LocaleConf(cfg *config.Config) string {
	return fmt.Sprintf("LANG=%s\n", cfg.Locale)
}

// VconsoleConf renders /etc/vconsole.conf
func VconsoleConf(cfg *config.Config) string {
	return fmt.Sprintf("KEYMAP=%s\n", cfg.Keymap)
}

// SudoersWheel renders the sudoers drop-in enabling the wheel group
func SudoersWheel() string {
	return "%wheel ALL=(ALL:ALL) ALL\n"
}

// ZramConf renders the zram-generator configuration for a compressed swap
// device half the size of RAM
func ZramConf() string {
	return "[zram0]\nzram-size = ram / 2\ncompression-algorithm = zstd\n"
}

// SfdiskScript is the declarative partition layout fed to sfdisk: a GPT
// label, a 512 MiB EFI system partition and the rest as one Linux partition.
func SfdiskScript() string {
	return "label: gpt\n,512MiB,U\n,,L\n"
}

package phase

import (
	"fmt"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/archmate/archmate/render"
	"github.com/google/uuid"
)

// InstallBootloader installs systemd-boot and writes the loader entry that
// unlocks the encrypted root by its LUKS UUID
type InstallBootloader struct {
	GenericPhase
}

// Title for the phase
func (p *InstallBootloader) Title() string {
	return "Install bootloader"
}

// Run the phase
func (p *InstallBootloader) Run() error {
	if err := p.Host.Chroot("bootctl install"); err != nil {
		return fmt.Errorf("bootctl install failed: %w", err)
	}

	luksUUID, err := p.luksUUID()
	if err != nil {
		return err
	}

	entry, err := render.BootEntry(p.Config, luksUUID, false)
	if err != nil {
		return err
	}

	if err := p.Host.WriteFile("/mnt/boot/loader/loader.conf", render.LoaderConf(), "0644"); err != nil {
		return err
	}
	return p.Host.WriteFile("/mnt/boot/loader/entries/arch.conf", entry, "0644")
}

// luksUUID reads the UUID of the LUKS container from blkid and validates it
// before it gets embedded into the boot entry
func (p *InstallBootloader) luksUUID() (uuid.UUID, error) {
	out, err := p.Host.ExecOutput(fmt.Sprintf("blkid -s UUID -o value %s", shellescape.Quote(p.Config.RootPartition())))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to read the LUKS volume UUID: %w", err)
	}

	id, err := uuid.Parse(strings.TrimSpace(out))
	if err != nil {
		return uuid.Nil, fmt.Errorf("blkid returned an invalid UUID %q: %w", strings.TrimSpace(out), err)
	}

	return id, nil
}

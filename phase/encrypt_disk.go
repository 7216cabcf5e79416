package phase

import (
	"fmt"

	"github.com/alessio/shellescape"
	"github.com/archmate/archmate/config"
	"github.com/k0sproject/rig/exec"
)

// EncryptDisk initializes LUKS2 on the root partition and opens it. The
// passphrase goes through cryptsetup's stdin so it never shows up in a
// process listing.
type EncryptDisk struct {
	GenericPhase
}

// Title for the phase
func (p *EncryptDisk) Title() string {
	return "Encrypt root partition"
}

// ShouldRun is false when the mapped device is already open
func (p *EncryptDisk) ShouldRun() bool {
	return !p.Host.FileExist(config.MapperPath)
}

// Run the phase
func (p *EncryptDisk) Run() error {
	part := shellescape.Quote(p.Config.RootPartition())
	passphrase := p.Config.DiskPassphrase.Value()

	if err := p.Host.Exec(
		fmt.Sprintf("cryptsetup luksFormat --type luks2 --batch-mode --key-file=- %s", part),
		exec.Stdin(passphrase),
		exec.RedactString(passphrase),
	); err != nil {
		return fmt.Errorf("failed to initialize LUKS2 on %s: %w", p.Config.RootPartition(), err)
	}

	if err := p.Host.Exec(
		fmt.Sprintf("cryptsetup open --key-file=- %s %s", part, config.MapperName),
		exec.Stdin(passphrase),
		exec.RedactString(passphrase),
	); err != nil {
		return fmt.Errorf("failed to open the encrypted volume: %w", err)
	}

	return nil
}

package phase

import (
	"fmt"

	"github.com/alessio/shellescape"
	"github.com/archmate/archmate/config"
)

// MakeFilesystems formats the EFI partition as FAT32 and the opened
// encrypted volume as Btrfs
type MakeFilesystems struct {
	GenericPhase
}

// Title for the phase
func (p *MakeFilesystems) Title() string {
	return "Create filesystems"
}

// Run the phase
func (p *MakeFilesystems) Run() error {
	if err := p.Host.Execf("mkfs.fat -F32 %s", shellescape.Quote(p.Config.EFIPartition())); err != nil {
		return fmt.Errorf("failed to format the EFI partition: %w", err)
	}

	if err := p.Host.Execf("mkfs.btrfs -f -L archroot %s", config.MapperPath); err != nil {
		return fmt.Errorf("failed to format the root filesystem: %w", err)
	}

	return nil
}

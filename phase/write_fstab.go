package phase

import (
	"fmt"

	"github.com/k0sproject/rig/exec"
)

// WriteFstab generates the filesystem table for the mounted layout
type WriteFstab struct {
	GenericPhase
}

// Title for the phase
func (p *WriteFstab) Title() string {
	return "Write filesystem table"
}

// Run the phase
func (p *WriteFstab) Run() error {
	fstab, err := p.Host.ExecOutput("genfstab -U /mnt", exec.HideOutput())
	if err != nil {
		return fmt.Errorf("genfstab failed: %w", err)
	}

	// overwrite rather than append so a re-run doesn't duplicate entries
	return p.Host.WriteFile("/mnt/etc/fstab", fstab+"\n", "0644")
}

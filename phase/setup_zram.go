package phase

import (
	"fmt"
	"strings"

	"github.com/archmate/archmate/render"
	"github.com/k0sproject/rig/exec"
)

const zramConfPath = "/etc/systemd/zram-generator.conf"

// SetupZram installs zram-generator and configures a compressed swap
// device half the size of RAM
type SetupZram struct {
	GenericPhase
}

// Title for the phase
func (p *SetupZram) Title() string {
	return "Set up compressed swap"
}

// ShouldRun is false when the generator is already configured
func (p *SetupZram) ShouldRun() bool {
	return !p.Host.FileExist(zramConfPath)
}

// Run the phase
func (p *SetupZram) Run() error {
	if err := p.Host.Exec(p.Host.Sudoize("pacman -S --needed --noconfirm zram-generator")); err != nil {
		return fmt.Errorf("failed to install zram-generator: %w", err)
	}

	if err := p.Host.WriteFile(zramConfPath, render.ZramConf(), "0644"); err != nil {
		return err
	}

	if err := p.Host.DaemonReload(); err != nil {
		return err
	}

	return p.Host.Exec(p.Host.Sudoize("systemctl start systemd-zram-setup@zram0.service"))
}

// VerifyZram checks that the zram device actually came up. Verification
// failing is not worth aborting the rest of the configuration for.
type VerifyZram struct {
	GenericPhase
	WarnOnlyPhase
}

// Title for the phase
func (p *VerifyZram) Title() string {
	return "Verify compressed swap"
}

// Run the phase
func (p *VerifyZram) Run() error {
	out, err := p.Host.ExecOutput("zramctl --noheadings --output NAME,DISKSIZE", exec.HideCommand())
	if err != nil {
		return fmt.Errorf("zramctl failed: %w", err)
	}
	if strings.TrimSpace(out) == "" {
		return fmt.Errorf("no zram device found")
	}
	return nil
}

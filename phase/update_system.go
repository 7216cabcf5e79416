package phase

import (
	"fmt"

	"github.com/k0sproject/rig/exec"
	"github.com/k0sproject/version"
	log "github.com/sirupsen/logrus"
)

// UpdateSystem performs a full system update. When the update replaced the
// kernel, the module tree of the running kernel is gone and the remaining
// phases can't load modules, so the run stops with ErrRebootRequired.
type UpdateSystem struct {
	GenericPhase
}

// Title for the phase
func (p *UpdateSystem) Title() string {
	return "Update system"
}

// Run the phase
func (p *UpdateSystem) Run() error {
	if err := p.Host.Exec(p.Host.Sudoize("pacman -Syu --noconfirm")); err != nil {
		return fmt.Errorf("system update failed: %w", err)
	}

	running, err := p.Host.KernelRelease()
	if err != nil {
		return err
	}

	if p.Host.DirExist("/usr/lib/modules/" + running) {
		return nil
	}

	p.logKernelVersions(running)
	return fmt.Errorf("the running kernel %s has no module directory anymore: %w", running, ErrRebootRequired)
}

// logKernelVersions reports how far behind the running kernel is
func (p *UpdateSystem) logKernelVersions(running string) {
	out, err := p.Host.ExecOutput("pacman -Q linux", exec.HideCommand())
	if err != nil {
		return
	}
	var name, installed string
	if _, err := fmt.Sscanf(out, "%s %s", &name, &installed); err != nil {
		return
	}

	runningV, err := version.NewVersion(running)
	if err != nil {
		log.Infof("kernel updated to %s, a reboot is required", installed)
		return
	}
	installedV, err := version.NewVersion(installed)
	if err != nil || runningV.GreaterThanOrEqual(installedV) {
		log.Infof("kernel updated to %s, a reboot is required", installed)
		return
	}
	log.Infof("kernel updated from %s to %s, a reboot is required", running, installed)
}

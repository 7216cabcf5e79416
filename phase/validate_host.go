package phase

import (
	"fmt"
	"os"
	"strings"

	"github.com/k0sproject/rig/exec"
	log "github.com/sirupsen/logrus"
)

// ValidateHost checks that the machine can actually be provisioned before
// anything destructive happens
type ValidateHost struct {
	GenericPhase

	// RequireRoot is set for the install run from the live environment;
	// the configure run must be the unprivileged user instead
	RequireRoot bool
	// RequireUEFI checks for UEFI firmware, needed for systemd-boot
	RequireUEFI bool
	// Tools are commands that must be present in PATH
	Tools []string
}

// Title for the phase
func (p *ValidateHost) Title() string {
	return "Validate host"
}

// Run the phase
func (p *ValidateHost) Run() error {
	if p.RequireRoot && os.Geteuid() != 0 {
		return fmt.Errorf("must be run as root")
	}
	if !p.RequireRoot && os.Geteuid() == 0 {
		return fmt.Errorf("must be run as the regular user, not root")
	}

	if p.RequireUEFI && !p.Host.DirExist("/sys/firmware/efi") {
		return fmt.Errorf("no UEFI firmware detected, legacy BIOS boot is not supported")
	}

	var missing []string
	for _, tool := range p.Tools {
		if !p.Host.CommandExist(tool) {
			missing = append(missing, tool)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required tools missing: %s", strings.Join(missing, ", "))
	}

	if err := p.Host.Exec("ping -c 1 -W 2 archlinux.org", exec.HideOutput()); err != nil {
		log.Warnf("network check failed, package installation will likely not work: %s", err.Error())
	}

	return nil
}

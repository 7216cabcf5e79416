package phase

import (
	"github.com/archmate/archmate/render"
)

const autologinOverride = "/etc/systemd/system/getty@tty1.service.d/override.conf"

// SetupAutologin writes a getty override so the created account is logged
// in on the first virtual terminal automatically
type SetupAutologin struct {
	GenericPhase
}

// Title for the phase
func (p *SetupAutologin) Title() string {
	return "Set up console autologin"
}

// ShouldRun is false when the override is already in place
func (p *SetupAutologin) ShouldRun() bool {
	return !p.Host.FileExist(autologinOverride)
}

// Run the phase
func (p *SetupAutologin) Run() error {
	override, err := render.AutologinOverride(p.Config.Username)
	if err != nil {
		return err
	}

	if err := p.Host.WriteFile(autologinOverride, override, "0644"); err != nil {
		return err
	}

	return p.Host.DaemonReload()
}

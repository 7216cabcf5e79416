package phase

import log "github.com/sirupsen/logrus"

var systemServices = []string{"sshd", "bluetooth"}
var userServices = []string{"pipewire.service", "pipewire-pulse.service", "wireplumber.service", "gnome-keyring-daemon.service"}

// EnableServices turns on the system and session services the desktop needs
type EnableServices struct {
	GenericPhase
}

// Title for the phase
func (p *EnableServices) Title() string {
	return "Enable services"
}

// Run the phase
func (p *EnableServices) Run() error {
	for _, unit := range systemServices {
		if p.Host.ServiceEnabled(unit) {
			log.Debugf("%s already enabled", unit)
			continue
		}
		if err := p.Host.ServiceEnable(unit); err != nil {
			return err
		}
	}

	for _, unit := range userServices {
		if err := p.Host.UserServiceEnable(unit); err != nil {
			return err
		}
	}

	return nil
}

package phase

import "fmt"

const pacmanConf = "/etc/pacman.conf"

// EnableMultilib uncomments the multilib repository in pacman.conf and
// refreshes the package databases
type EnableMultilib struct {
	GenericPhase
}

// Title for the phase
func (p *EnableMultilib) Title() string {
	return "Enable multilib repository"
}

// ShouldRun is false when the repository is already enabled
func (p *EnableMultilib) ShouldRun() bool {
	return !p.Host.LineExist(pacmanConf, `^\[multilib\]`)
}

// Run the phase
func (p *EnableMultilib) Run() error {
	// uncomment the section header and the Include line that follows it
	if err := p.Host.Exec(p.Host.Sudoize(fmt.Sprintf(`sed -i '/^#\[multilib\]/,+1 s/^#//' %s`, pacmanConf))); err != nil {
		return fmt.Errorf("failed to edit %s: %w", pacmanConf, err)
	}

	if !p.Host.LineExist(pacmanConf, `^\[multilib\]`) {
		return fmt.Errorf("the multilib section is still commented out in %s", pacmanConf)
	}

	return p.Host.Exec(p.Host.Sudoize("pacman -Sy"))
}

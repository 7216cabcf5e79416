package phase

import (
	"fmt"

	"github.com/alessio/shellescape"
	"github.com/archmate/archmate/cache"
)

const aurHelperRepo = "https://aur.archlinux.org/yay-bin.git"

// InstallAURHelper bootstraps yay by building it from the AUR
type InstallAURHelper struct {
	GenericPhase
}

// Title for the phase
func (p *InstallAURHelper) Title() string {
	return "Install AUR helper"
}

// ShouldRun is false when yay is already available
func (p *InstallAURHelper) ShouldRun() bool {
	return !p.Host.CommandExist("yay")
}

// Run the phase
func (p *InstallAURHelper) Run() error {
	buildDir := cache.File("yay-bin")
	if err := cache.EnsureDir(cache.Dir()); err != nil {
		return err
	}

	if err := p.Host.DeleteDir(buildDir); err != nil {
		return err
	}

	if err := p.Host.Execf("git clone %s %s", aurHelperRepo, shellescape.Quote(buildDir)); err != nil {
		return fmt.Errorf("failed to clone yay-bin: %w", err)
	}

	if err := p.Host.Exec(fmt.Sprintf("cd %s && makepkg -si --noconfirm", shellescape.Quote(buildDir))); err != nil {
		return fmt.Errorf("failed to build yay-bin: %w", err)
	}

	return p.Host.DeleteDir(buildDir)
}

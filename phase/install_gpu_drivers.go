package phase

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/archmate/archmate/config"
	log "github.com/sirupsen/logrus"
)

// InstallGPUDrivers installs the driver package set for the configured
// graphics vendor
type InstallGPUDrivers struct {
	GenericPhase

	// Vendor is the graphics vendor, set when the phase list is built so
	// the title can name it
	Vendor config.GPUVendor
}

// Title for the phase
func (p *InstallGPUDrivers) Title() string {
	if p.Vendor == "" || p.Vendor == config.GPUNone {
		return "Install GPU drivers"
	}
	titler := cases.Title(language.AmericanEnglish)
	return fmt.Sprintf("Install %s GPU drivers", titler.String(string(p.Vendor)))
}

// ShouldRun is false when no vendor was selected
func (p *InstallGPUDrivers) ShouldRun() bool {
	return p.Config.GPUVendor != config.GPUNone
}

// Run the phase
func (p *InstallGPUDrivers) Run() error {
	pkgs := p.Config.GPUPackages()
	log.Infof("installing %s drivers (%s)", p.Config.GPUVendor, strings.Join(pkgs, ", "))

	if err := p.Host.Exec(p.Host.Sudoize(fmt.Sprintf("pacman -S --needed --noconfirm %s", strings.Join(pkgs, " ")))); err != nil {
		return fmt.Errorf("driver installation failed: %w", err)
	}

	return nil
}

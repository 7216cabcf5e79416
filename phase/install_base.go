package phase

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// InstallBase bootstraps the base system into /mnt with pacstrap
type InstallBase struct {
	GenericPhase
}

// Title for the phase
func (p *InstallBase) Title() string {
	return "Install base system"
}

// Run the phase
func (p *InstallBase) Run() error {
	pkgs := p.Config.BasePackages()
	log.Infof("installing %d packages, this will take a while", len(pkgs))

	if err := p.Host.Execf("pacstrap -K /mnt %s", strings.Join(pkgs, " ")); err != nil {
		return fmt.Errorf("pacstrap failed: %w", err)
	}

	return nil
}

package phase

import (
	"fmt"

	"github.com/archmate/archmate/render"
	log "github.com/sirupsen/logrus"
)

const (
	snapperConfig = "/etc/snapper/configs/root"

	// snap-pac's pacman hook fires while snapper is still creating the
	// config and the two race over /.snapshots, so the hook gets moved
	// aside for the duration of create-config
	snapshotHook      = "/usr/share/libalpm/hooks/05-snap-pac-pre.hook"
	snapshotHookAside = snapshotHook + ".archmate"
)

// ConfigureSnapper creates the root snapshot configuration and applies the
// retention policy
type ConfigureSnapper struct {
	GenericPhase

	hookMoved bool
}

// Title for the phase
func (p *ConfigureSnapper) Title() string {
	return "Configure snapshots"
}

// ShouldRun is false when the root config already exists
func (p *ConfigureSnapper) ShouldRun() bool {
	return !p.Host.FileExist(snapperConfig)
}

// Run the phase
func (p *ConfigureSnapper) Run() error {
	if p.Host.FileExist(snapshotHook) {
		if err := p.Host.MoveFile(snapshotHook, snapshotHookAside); err != nil {
			return err
		}
		p.hookMoved = true
	}
	defer p.restoreHook()

	if err := p.Host.Exec(p.Host.Sudoize("snapper -c root create-config /")); err != nil {
		return fmt.Errorf("snapper create-config failed: %w", err)
	}

	conf, err := p.Host.ReadFile(snapperConfig)
	if err != nil {
		return err
	}
	if err := p.Host.WriteFile(snapperConfig, render.WithSnapperRetention(conf), "0640"); err != nil {
		return err
	}

	for _, timer := range []string{"snapper-timeline.timer", "snapper-cleanup.timer"} {
		if err := p.Host.ServiceEnable(timer); err != nil {
			return err
		}
	}

	return nil
}

// CleanUp puts the hook back if a later phase fails before restoreHook ran
func (p *ConfigureSnapper) CleanUp() {
	p.restoreHook()
}

func (p *ConfigureSnapper) restoreHook() {
	if !p.hookMoved {
		return
	}
	if err := p.Host.MoveFile(snapshotHookAside, snapshotHook); err != nil {
		log.Warnf("failed to restore %s: %s", snapshotHook, err.Error())
		return
	}
	p.hookMoved = false
}

// SyncSnapshots takes the initial snapshot. Failing here leaves the system
// fully usable, so it only warns.
type SyncSnapshots struct {
	GenericPhase
	WarnOnlyPhase
}

// Title for the phase
func (p *SyncSnapshots) Title() string {
	return "Create initial snapshot"
}

// Run the phase
func (p *SyncSnapshots) Run() error {
	if err := p.Host.Exec(p.Host.Sudoize("snapper -c root create -d 'initial snapshot'")); err != nil {
		return fmt.Errorf("failed to create the initial snapshot: %w", err)
	}
	return nil
}

package phase

import "github.com/archmate/archmate/config"

// GenericPhase is a basic phase which receives the config and the local
// host from the manager before running
type GenericPhase struct {
	Config *config.Config
	Host   Host
}

// Prepare the phase
func (p *GenericPhase) Prepare(c *config.Config) error {
	p.Config = c
	return nil
}

// SetHost stores the local host for the phase's tool invocations
func (p *GenericPhase) SetHost(h Host) {
	p.Host = h
}

// WarnOnlyPhase marks a phase whose failure is logged but does not stop
// the run
type WarnOnlyPhase struct{}

// NonCritical is always true for WarnOnlyPhases
func (p WarnOnlyPhase) NonCritical() bool {
	return true
}

package phase

import (
	"errors"
	"fmt"

	"github.com/archmate/archmate/config"
	"github.com/logrusorgru/aurora"
	log "github.com/sirupsen/logrus"
)

// ErrRebootRequired signals a controlled stop: the machine must be rebooted
// before the remaining phases can run. It is not a failure of the invocation.
var ErrRebootRequired = errors.New("reboot required before continuing")

// Phase is a single named unit of provisioning work
type Phase interface {
	Run() error
	Title() string
}

type preparable interface {
	Prepare(*config.Config) error
}

type hosted interface {
	SetHost(Host)
}

// conditional phases are checked before running; a satisfied condition
// skips the phase
type conditional interface {
	ShouldRun() bool
}

// cleanable phases get their CleanUp called when a later phase fails
type cleanable interface {
	CleanUp()
}

// nonCritical phases may fail without stopping the run
type nonCritical interface {
	NonCritical() bool
}

// Manager executes phases in order to provision the machine
type Manager struct {
	phases []Phase

	Config *config.Config
	Host   Host
}

// AddPhase adds a Phase to the Manager
func (m *Manager) AddPhase(p ...Phase) {
	m.phases = append(m.phases, p...)
}

// Run executes all the added Phases in order. The first failing critical
// phase stops the run and the CleanUps of already entered phases are
// performed in reverse order. A failing non-critical phase logs a warning
// and the run continues.
func (m *Manager) Run() error {
	var entered []cleanable

	cleanup := func() {
		for i := len(entered) - 1; i >= 0; i-- {
			entered[i].CleanUp()
		}
	}

	for _, p := range m.phases {
		if h, ok := p.(hosted); ok {
			h.SetHost(m.Host)
		}

		if prep, ok := p.(preparable); ok {
			log.Debugf("preparing phase '%s'", p.Title())
			if err := prep.Prepare(m.Config); err != nil {
				cleanup()
				return fmt.Errorf("failed to prepare phase '%s': %w", p.Title(), err)
			}
		}

		if c, ok := p.(conditional); ok && !c.ShouldRun() {
			log.Infof("%s: already done, skipping", p.Title())
			continue
		}

		if cl, ok := p.(cleanable); ok {
			entered = append(entered, cl)
		}

		text := aurora.Green("==> Running phase: %s").String()
		log.Infof(text, p.Title())
		if err := p.Run(); err != nil {
			if errors.Is(err, ErrRebootRequired) {
				cleanup()
				return err
			}
			if nc, ok := p.(nonCritical); ok && nc.NonCritical() {
				log.Warnf("phase '%s' failed: %s - continuing", p.Title(), err.Error())
				continue
			}
			cleanup()
			return fmt.Errorf("phase '%s' failed: %w", p.Title(), err)
		}
	}

	return nil
}

package phase

import (
	"fmt"
	"testing"

	"github.com/archmate/archmate/config"
	"github.com/stretchr/testify/require"
)

type conditionalPhase struct {
	shouldrunCalled bool
	runCalled       bool
}

func (p *conditionalPhase) Title() string {
	return "conditional phase"
}

func (p *conditionalPhase) ShouldRun() bool {
	p.shouldrunCalled = true
	return false
}

func (p *conditionalPhase) Run() error {
	p.runCalled = true
	return nil
}

func TestConditionalPhase(t *testing.T) {
	m := Manager{}
	p := &conditionalPhase{}
	m.AddPhase(p)
	require.NoError(t, m.Run())
	require.False(t, p.runCalled, "run was called")
	require.True(t, p.shouldrunCalled, "shouldrun was not called")
}

type configPhase struct {
	receivedConfig bool
}

func (p *configPhase) Title() string {
	return "config phase"
}

func (p *configPhase) Prepare(c *config.Config) error {
	p.receivedConfig = c != nil
	return nil
}

func (p *configPhase) Run() error {
	return nil
}

func TestConfigPhase(t *testing.T) {
	m := Manager{Config: &config.Config{}}
	p := &configPhase{}
	m.AddPhase(p)
	require.NoError(t, m.Run())
	require.True(t, p.receivedConfig, "config was not received")
}

type namedPhase struct {
	title string
	err   error
	ran   bool
}

func (p *namedPhase) Title() string {
	return p.title
}

func (p *namedPhase) Run() error {
	p.ran = true
	return p.err
}

func TestFatalPhaseStopsRun(t *testing.T) {
	m := Manager{}
	first := &namedPhase{title: "first"}
	failing := &namedPhase{title: "failing", err: fmt.Errorf("boom")}
	last := &namedPhase{title: "last"}
	m.AddPhase(first, failing, last)

	err := m.Run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "failing")
	require.True(t, first.ran, "first phase did not run")
	require.False(t, last.ran, "phases after the failure ran")
}

type warnPhase struct {
	WarnOnlyPhase
	err error
}

func (p *warnPhase) Title() string {
	return "warn phase"
}

func (p *warnPhase) Run() error {
	return p.err
}

func TestWarnPhaseContinues(t *testing.T) {
	m := Manager{}
	failing := &warnPhase{err: fmt.Errorf("boom")}
	last := &namedPhase{title: "last"}
	m.AddPhase(failing, last)

	require.NoError(t, m.Run())
	require.True(t, last.ran, "phases after a warn failure did not run")
}

func TestRebootRequiredStopsRun(t *testing.T) {
	m := Manager{}
	rebooting := &namedPhase{title: "rebooting", err: fmt.Errorf("kernel gone: %w", ErrRebootRequired)}
	last := &namedPhase{title: "last"}
	m.AddPhase(rebooting, last)

	err := m.Run()
	require.ErrorIs(t, err, ErrRebootRequired)
	require.False(t, last.ran, "phases after the reboot gate ran")
}

type cleanupPhase struct {
	namedPhase
	cleaned bool
}

func (p *cleanupPhase) CleanUp() {
	p.cleaned = true
}

func TestCleanUpOnFailure(t *testing.T) {
	m := Manager{}
	entered := &cleanupPhase{namedPhase: namedPhase{title: "entered"}}
	failing := &namedPhase{title: "failing", err: fmt.Errorf("boom")}
	m.AddPhase(entered, failing)

	require.Error(t, m.Run())
	require.True(t, entered.cleaned, "cleanup was not called")
}

func TestCleanUpNotCalledOnSuccess(t *testing.T) {
	m := Manager{}
	entered := &cleanupPhase{namedPhase: namedPhase{title: "entered"}}
	m.AddPhase(entered)

	require.NoError(t, m.Run())
	require.False(t, entered.cleaned, "cleanup was called on success")
}

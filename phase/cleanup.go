package phase

import "github.com/archmate/archmate/cache"

// Cleanup removes leftover build directories from the cache. Purely
// cosmetic, so it only warns on failure.
type Cleanup struct {
	GenericPhase
	WarnOnlyPhase
}

// Title for the phase
func (p *Cleanup) Title() string {
	return "Clean up"
}

// ShouldRun is false when there is nothing to remove
func (p *Cleanup) ShouldRun() bool {
	return p.Host.DirExist(cache.File("yay-bin"))
}

// Run the phase
func (p *Cleanup) Run() error {
	return p.Host.DeleteDir(cache.File("yay-bin"))
}

package action

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/archmate/archmate/phase"
	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

// Configure performs the post-first-boot configuration as the created
// user: update, AUR helper, packages, drivers, snapshots, boot splash and
// the desktop session.
type Configure struct {
	// Manager is the phase manager
	Manager *phase.Manager
	// NoReboot skips the reboot prompt at the end of the run
	NoReboot bool
}

// Run the Configure action
func (a Configure) Run() error {
	start := time.Now()

	a.Manager.AddPhase(
		&phase.ValidateHost{
			Tools: []string{"pacman", "git", "systemctl"},
		},
		&phase.UpdateSystem{},
		&phase.InstallAURHelper{},
		&phase.EnableMultilib{},
		&phase.SetupZram{},
		&phase.VerifyZram{},
		&phase.InstallPackages{},
		&phase.InstallGPUDrivers{Vendor: a.Manager.Config.GPUVendor},
		&phase.ConfigureSnapper{},
		&phase.SyncSnapshots{},
		&phase.InstallPlymouth{},
		&phase.ConfigureSession{},
		&phase.EnableServices{},
		&phase.SetupAutologin{},
		&phase.Cleanup{},
	)

	err := a.Manager.Run()
	if errors.Is(err, phase.ErrRebootRequired) {
		log.Info(aurora.Yellow("==> Reboot required").String())
		log.Info("the kernel was updated - reboot and run 'archmate configure' again to finish")
		return nil
	}
	if err != nil {
		log.Info(aurora.Red("==> Configure failed").String())
		return err
	}

	duration := time.Since(start).Truncate(time.Second)
	log.Info(aurora.Green(fmt.Sprintf("==> Finished in %s", duration)).String())

	return a.maybeReboot()
}

func (a Configure) maybeReboot() error {
	if a.NoReboot || !isatty.IsTerminal(os.Stdout.Fd()) {
		log.Info("reboot to start the new session")
		return nil
	}

	confirmed := false
	prompt := &survey.Confirm{
		Message: "Configuration finished. Reboot now?",
	}
	_ = survey.AskOne(prompt, &confirmed)
	if !confirmed {
		log.Info("reboot later to start the new session")
		return nil
	}

	return a.Manager.Host.Exec(a.Manager.Host.Sudoize("systemctl reboot"))
}

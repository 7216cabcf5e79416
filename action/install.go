package action

import (
	"fmt"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/archmate/archmate/phase"
	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

// Install performs the privileged pre-boot installation from the live
// environment: partitioning, encryption, filesystems, base system, chroot
// configuration and the bootloader.
type Install struct {
	// Manager is the phase manager
	Manager *phase.Manager
	// Force skips the destructive-action confirmation
	Force bool
}

// Run the Install action
func (a Install) Run() error {
	if !a.Force {
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			return fmt.Errorf("install requires --force when not running interactively")
		}
		confirmed := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Going to repartition and encrypt %s, destroying everything on it. Are you sure?", a.Manager.Config.Disk),
		}
		_ = survey.AskOne(prompt, &confirmed)
		if !confirmed {
			return fmt.Errorf("confirmation or --force required to proceed")
		}
	}

	start := time.Now()

	a.Manager.AddPhase(
		&phase.ValidateHost{
			RequireRoot: true,
			RequireUEFI: true,
			Tools:       []string{"sfdisk", "cryptsetup", "mkfs.fat", "mkfs.btrfs", "pacstrap", "genfstab", "arch-chroot", "blkid"},
		},
		&phase.PartitionDisk{},
		&phase.EncryptDisk{},
		&phase.MakeFilesystems{},
		&phase.CreateSubvolumes{},
		&phase.MountVolumes{},
		&phase.InstallBase{},
		&phase.WriteFstab{},
		&phase.ConfigureSystem{},
		&phase.InstallBootloader{},
	)

	if err := a.Manager.Run(); err != nil {
		log.Info(aurora.Red("==> Install failed").String())
		return err
	}

	duration := time.Since(start).Truncate(time.Second)
	log.Info(aurora.Green(fmt.Sprintf("==> Finished in %s", duration)).String())
	log.Infof("%s is installed - reboot into it and run 'archmate configure' as %s", a.Manager.Config.Hostname, a.Manager.Config.Username)

	return nil
}

package phase

import (
	"fmt"

	"github.com/alessio/shellescape"
	"github.com/archmate/archmate/render"
	"github.com/k0sproject/rig/exec"
	log "github.com/sirupsen/logrus"
)

// PartitionDisk wipes the target disk and creates the EFI system partition
// and the root partition. The destructive confirmation happens before the
// phase list starts, this phase always repartitions.
type PartitionDisk struct {
	GenericPhase
}

// Title for the phase
func (p *PartitionDisk) Title() string {
	return "Partition disk"
}

// Run the phase
func (p *PartitionDisk) Run() error {
	log.Infof("creating %s (EFI) and %s (root) on %s", p.Config.EFIPartition(), p.Config.RootPartition(), p.Config.Disk)

	if err := p.Host.Exec(
		fmt.Sprintf("sfdisk --wipe always %s", shellescape.Quote(p.Config.Disk)),
		exec.Stdin(render.SfdiskScript()),
	); err != nil {
		return fmt.Errorf("failed to partition %s: %w", p.Config.Disk, err)
	}

	// give udev time to create the partition device nodes
	return p.Host.Exec("udevadm settle")
}

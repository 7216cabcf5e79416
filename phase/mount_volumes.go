package phase

import (
	"fmt"
	"path/filepath"

	"github.com/alessio/shellescape"
	"github.com/archmate/archmate/config"
)

const mountOpts = "noatime,compress=zstd,space_cache=v2"

// MountVolumes mounts the subvolume layout and the EFI partition under /mnt
type MountVolumes struct {
	GenericPhase
}

// Title for the phase
func (p *MountVolumes) Title() string {
	return "Mount filesystems"
}

// ShouldRun is false when the target root is already mounted
func (p *MountVolumes) ShouldRun() bool {
	return !p.Host.Mounted("/mnt")
}

// Run the phase
func (p *MountVolumes) Run() error {
	for _, sv := range Subvolumes {
		opts := mountOpts
		if sv.NoCompress {
			// swapfiles can't live on compressed extents
			opts = "noatime"
		}

		target := filepath.Join("/mnt", sv.Mountpoint)
		if err := p.Host.MkDir(target); err != nil {
			return err
		}
		if err := p.Host.Execf("mount -o %s,subvol=%s %s %s", opts, sv.Name, config.MapperPath, target); err != nil {
			return fmt.Errorf("failed to mount subvolume %s: %w", sv.Name, err)
		}
	}

	if err := p.Host.MkDir("/mnt/boot"); err != nil {
		return err
	}
	if err := p.Host.Execf("mount %s /mnt/boot", shellescape.Quote(p.Config.EFIPartition())); err != nil {
		return fmt.Errorf("failed to mount the EFI partition: %w", err)
	}

	return nil
}

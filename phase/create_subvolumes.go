package phase

import (
	"fmt"
	"path/filepath"

	"github.com/archmate/archmate/config"
)

// Subvolume is one Btrfs subvolume and where it gets mounted under /mnt
type Subvolume struct {
	Name       string
	Mountpoint string
	NoCompress bool
}

// Subvolumes is the fixed subvolume layout, in mount order. The root
// subvolume must stay first so the others mount inside it.
var Subvolumes = []Subvolume{
	{Name: "@", Mountpoint: ""},
	{Name: "@home", Mountpoint: "home"},
	{Name: "@pkg", Mountpoint: "var/cache/pacman/pkg"},
	{Name: "@log", Mountpoint: "var/log"},
	{Name: "@swap", Mountpoint: "swap", NoCompress: true},
	{Name: "@containers", Mountpoint: "var/lib/containers"},
	{Name: "@libvirt", Mountpoint: "var/lib/libvirt"},
}

// CreateSubvolumes creates the subvolume layout on the fresh Btrfs
// filesystem. Each subvolume is created only when missing, so re-running
// the sequence is safe.
type CreateSubvolumes struct {
	GenericPhase
}

// Title for the phase
func (p *CreateSubvolumes) Title() string {
	return "Create Btrfs subvolumes"
}

// Run the phase
func (p *CreateSubvolumes) Run() error {
	if err := p.Host.Execf("mount %s /mnt", config.MapperPath); err != nil {
		return fmt.Errorf("failed to mount the top-level volume: %w", err)
	}
	defer func() {
		_ = p.Host.Exec("umount /mnt")
	}()

	for _, sv := range Subvolumes {
		path := filepath.Join("/mnt", sv.Name)
		if p.Host.DirExist(path) {
			continue
		}
		if err := p.Host.Execf("btrfs subvolume create %s", path); err != nil {
			return fmt.Errorf("failed to create subvolume %s: %w", sv.Name, err)
		}
	}

	return nil
}

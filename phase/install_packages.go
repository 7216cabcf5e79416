package phase

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// officialPackages is the desktop package set from the official repositories
var officialPackages = []string{
	"hyprland",
	"uwsm",
	"foot",
	"fuzzel",
	"waybar",
	"mako",
	"xdg-desktop-portal-hyprland",
	"qt5-wayland",
	"qt6-wayland",
	"pipewire",
	"pipewire-pulse",
	"wireplumber",
	"gnome-keyring",
	"bluez",
	"bluez-utils",
	"openssh",
	"snapper",
	"snap-pac",
	"plymouth",
	"firefox",
	"podman",
	"libvirt",
	"ttf-jetbrains-mono-nerd",
	"noto-fonts",
	"polkit-gnome",
	"brightnessctl",
	"grim",
	"slurp",
	"wl-clipboard",
}

// aurPackages come from the AUR via yay
var aurPackages = []string{
	"snp",
	"hyprshot",
}

// InstallPackages installs the desktop package set, official repositories
// first, then the AUR
type InstallPackages struct {
	GenericPhase
}

// Title for the phase
func (p *InstallPackages) Title() string {
	return "Install packages"
}

// Run the phase
func (p *InstallPackages) Run() error {
	log.Infof("installing %d official and %d AUR packages", len(officialPackages), len(aurPackages))

	if err := p.Host.Exec(p.Host.Sudoize(fmt.Sprintf("pacman -S --needed --noconfirm %s", strings.Join(officialPackages, " ")))); err != nil {
		return fmt.Errorf("package installation failed: %w", err)
	}

	if err := p.Host.Execf("yay -S --needed --noconfirm %s", strings.Join(aurPackages, " ")); err != nil {
		return fmt.Errorf("AUR package installation failed: %w", err)
	}

	return nil
}

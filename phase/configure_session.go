package phase

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/archmate/archmate/render"
)

// ConfigureSession writes the window manager configuration, the autostart
// script and the login-shell snippet that launches the session manager on
// the first virtual terminal
type ConfigureSession struct {
	GenericPhase
}

// Title for the phase
func (p *ConfigureSession) Title() string {
	return "Configure desktop session"
}

// Run the phase
func (p *ConfigureSession) Run() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to locate the home directory: %w", err)
	}

	hyprDir := filepath.Join(home, ".config", "hypr")
	if err := p.Host.WriteUserFile(filepath.Join(hyprDir, "hyprland.conf"), render.HyprlandConf(p.Config), "0644"); err != nil {
		return err
	}
	if err := p.Host.WriteUserFile(filepath.Join(hyprDir, "autostart.sh"), render.AutostartScript(), "0755"); err != nil {
		return err
	}

	return p.wireAutostart(filepath.Join(home, ".bash_profile"))
}

// wireAutostart appends the tty1 session launch snippet, at most once
func (p *ConfigureSession) wireAutostart(profile string) error {
	if p.Host.FileExist(profile) && p.Host.LineExist(profile, render.ProfileMarker()) {
		return nil
	}

	var current string
	if p.Host.FileExist(profile) {
		existing, err := p.Host.ReadFile(profile)
		if err != nil {
			return err
		}
		current = existing
	}

	return p.Host.WriteUserFile(profile, current+render.ProfileSnippet(), "0644")
}

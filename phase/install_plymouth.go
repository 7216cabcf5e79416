package phase

import (
	"fmt"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/archmate/archmate/render"
	"github.com/k0sproject/rig/exec"
)

const (
	plymouthTheme    = "arch-glow"
	plymouthThemeDir = "/usr/share/plymouth/themes/" + plymouthTheme
	// shipped alongside the binary by the package
	plymouthThemeSrc = "/usr/share/archmate/themes/" + plymouthTheme

	mkinitcpioConf = "/etc/mkinitcpio.conf"
	bootEntry      = "/boot/loader/entries/arch.conf"
)

// InstallPlymouth installs the boot splash theme, hooks plymouth into the
// initramfs and adds the splash kernel argument
type InstallPlymouth struct {
	GenericPhase
}

// Title for the phase
func (p *InstallPlymouth) Title() string {
	return "Install boot splash"
}

// ShouldRun is false when the theme is already the default
func (p *InstallPlymouth) ShouldRun() bool {
	out, err := p.Host.ExecOutput("plymouth-set-default-theme", exec.HideCommand())
	if err != nil {
		return true
	}
	return strings.TrimSpace(out) != plymouthTheme
}

// Run the phase
func (p *InstallPlymouth) Run() error {
	if p.Host.DirExist(plymouthThemeSrc) {
		if err := p.Host.Exec(p.Host.Sudoize(fmt.Sprintf("cp -r %s %s", shellescape.Quote(plymouthThemeSrc), shellescape.Quote(plymouthThemeDir)))); err != nil {
			return fmt.Errorf("failed to copy the theme: %w", err)
		}
	}

	if err := p.Host.Exec(p.Host.Sudoize(fmt.Sprintf("plymouth-set-default-theme %s", plymouthTheme))); err != nil {
		return fmt.Errorf("failed to set the default theme: %w", err)
	}

	if err := p.patchFile(mkinitcpioConf, "0644", render.WithPlymouthHook); err != nil {
		return err
	}
	if err := p.patchFile(bootEntry, "0644", func(s string) (string, error) {
		return render.WithKernelArg(s, "splash")
	}); err != nil {
		return err
	}

	return p.Host.Exec(p.Host.Sudoize("mkinitcpio -P"))
}

func (p *InstallPlymouth) patchFile(path, perm string, transform func(string) (string, error)) error {
	content, err := p.Host.ReadFile(path)
	if err != nil {
		return err
	}
	updated, err := transform(content)
	if err != nil {
		return fmt.Errorf("failed to patch %s: %w", path, err)
	}
	if updated == content {
		return nil
	}
	return p.Host.WriteFile(path, updated, perm)
}

package phase

import (
	"fmt"

	"github.com/archmate/archmate/render"
	"github.com/k0sproject/rig/exec"
	log "github.com/sirupsen/logrus"
)

// ConfigureSystem performs the chrooted configuration of the freshly
// installed root: clock, locale, names, accounts and the encryption-aware
// initramfs. Every generated file is overwritten, so re-running is safe.
type ConfigureSystem struct {
	GenericPhase
}

// Title for the phase
func (p *ConfigureSystem) Title() string {
	return "Configure installed system"
}

// Run the phase
func (p *ConfigureSystem) Run() error {
	steps := []struct {
		name string
		f    func() error
	}{
		{"clock", p.configureClock},
		{"locale", p.configureLocale},
		{"hostname", p.configureHostname},
		{"accounts", p.configureAccounts},
		{"initramfs", p.configureInitramfs},
		{"network", p.configureNetwork},
	}

	for _, step := range steps {
		log.Debugf("configuring %s", step.name)
		if err := step.f(); err != nil {
			return fmt.Errorf("failed to configure %s: %w", step.name, err)
		}
	}

	return nil
}

func (p *ConfigureSystem) configureClock() error {
	if err := p.Host.Chroot(fmt.Sprintf("ln -sf /usr/share/zoneinfo/%s /etc/localtime", p.Config.Timezone)); err != nil {
		return err
	}
	return p.Host.Chroot("hwclock --systohc")
}

func (p *ConfigureSystem) configureLocale() error {
	if err := p.Host.Chroot(fmt.Sprintf("sed -i 's/^#%s/%s/' /etc/locale.gen", p.Config.Locale, p.Config.Locale)); err != nil {
		return err
	}
	if err := p.Host.Chroot("locale-gen"); err != nil {
		return err
	}
	if err := p.Host.WriteFile("/mnt/etc/locale.conf", render.LocaleConf(p.Config), "0644"); err != nil {
		return err
	}
	return p.Host.WriteFile("/mnt/etc/vconsole.conf", render.VconsoleConf(p.Config), "0644")
}

func (p *ConfigureSystem) configureHostname() error {
	if err := p.Host.WriteFile("/mnt/etc/hostname", render.Hostname(p.Config), "0644"); err != nil {
		return err
	}
	return p.Host.WriteFile("/mnt/etc/hosts", render.Hosts(p.Config), "0644")
}

func (p *ConfigureSystem) configureAccounts() error {
	user := p.Config.Username

	if err := p.Host.Chroot(fmt.Sprintf("id -u %s >/dev/null 2>&1 || useradd -m -G wheel -s /bin/bash %s", user, user)); err != nil {
		return err
	}

	// both passwords through chpasswd's stdin, never on a command line
	entries := fmt.Sprintf("root:%s\n%s:%s\n", p.Config.UserPassword.Value(), user, p.Config.UserPassword.Value())
	if err := p.Host.Chroot("chpasswd", exec.Stdin(entries), exec.RedactString(entries)); err != nil {
		return err
	}

	return p.Host.WriteFile("/mnt/etc/sudoers.d/10-wheel", render.SudoersWheel(), "0440")
}

func (p *ConfigureSystem) configureInitramfs() error {
	conf, err := p.Host.ReadFile("/mnt/etc/mkinitcpio.conf")
	if err != nil {
		return err
	}

	updated, err := render.WithEncryptHook(conf)
	if err != nil {
		return err
	}
	if updated != conf {
		if err := p.Host.WriteFile("/mnt/etc/mkinitcpio.conf", updated, "0644"); err != nil {
			return err
		}
	}

	return p.Host.Chroot("mkinitcpio -P")
}

func (p *ConfigureSystem) configureNetwork() error {
	return p.Host.Chroot("systemctl enable NetworkManager")
}

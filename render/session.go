package render

import (
	"fmt"
	"io"

	"github.com/archmate/archmate/config"
	"github.com/coreos/go-systemd/v22/unit"
)

// HyprlandConf renders a minimal window manager configuration that wires in
// the autostart script
func HyprlandConf(cfg *config.Config) string {
	return `# generated by archmate, edit freely
monitor=,preferred,auto,1

exec-once = ~/.config/hypr/autostart.sh

input {
    kb_layout = ` + cfg.Keymap + `
}

$mod = SUPER

bind = $mod, Return, exec, foot
bind = $mod, D, exec, fuzzel
bind = $mod, Q, killactive
bind = $mod SHIFT, E, exit
`
}

// AutostartScript renders the session autostart helper started by the
// window manager
func AutostartScript() string {
	return `#!/bin/sh
# generated by archmate
waybar &
mako &
`
}

// profileMarker guards the login snippet so it is appended at most once
const profileMarker = "# archmate session autostart"

// ProfileMarker returns the guard line of the login-shell snippet
func ProfileMarker() string {
	return profileMarker
}

// ProfileSnippet renders the login-shell addition that starts the session
// manager on the first virtual terminal only
func ProfileSnippet() string {
	return "\n" + profileMarker + `
if uwsm check may-start && [ "$(tty)" = "/dev/tty1" ]; then
    exec uwsm start hyprland.desktop
fi
`
}

// AutologinOverride renders the getty override that logs the named account
// in automatically on tty1
func AutologinOverride(username string) (string, error) {
	opts := []*unit.UnitOption{
		unit.NewUnitOption("Service", "ExecStart", ""),
		unit.NewUnitOption("Service", "ExecStart", fmt.Sprintf(`-/sbin/agetty -o '-p -f -- \u' --noclear --autologin %s %%I $TERM`, username)),
	}
	data, err := io.ReadAll(unit.Serialize(opts))
	if err != nil {
		return "", fmt.Errorf("failed to serialize autologin override: %w", err)
	}
	return string(data), nil
}

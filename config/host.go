package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/k0sproject/rig"
	"github.com/k0sproject/rig/exec"
)

// Host runs commands on the machine being provisioned through rig's
// localhost client. Every external tool invocation in the phases goes
// through it.
type Host struct {
	rig.Connection
}

// NewLocalHost returns a Host for the local machine
func NewLocalHost() *Host {
	return &Host{
		Connection: rig.Connection{
			Localhost: &rig.Localhost{
				Enabled: true,
			},
		},
	}
}

// Sudoize prefixes the command with sudo unless already running as root
func (h *Host) Sudoize(cmd string) string {
	if os.Geteuid() == 0 {
		return cmd
	}
	return "sudo " + cmd
}

// FileExist returns true when a path exists
func (h *Host) FileExist(path string) bool {
	return h.Exec(fmt.Sprintf("test -e %s", shellescape.Quote(path)), exec.HideCommand()) == nil
}

// DirExist returns true when a path exists and is a directory
func (h *Host) DirExist(path string) bool {
	return h.Exec(fmt.Sprintf("test -d %s", shellescape.Quote(path)), exec.HideCommand()) == nil
}

// CommandExist returns true when the named command is in PATH
func (h *Host) CommandExist(name string) bool {
	return h.Exec(fmt.Sprintf("command -v %s", shellescape.Quote(name)), exec.HideCommand(), exec.HideOutput()) == nil
}

// LineExist returns true when a line in the file matches the pattern
func (h *Host) LineExist(path, pattern string) bool {
	return h.Exec(fmt.Sprintf("grep -q %s %s", shellescape.Quote(pattern), shellescape.Quote(path)), exec.HideCommand()) == nil
}

// ReadFile returns the contents of a file
func (h *Host) ReadFile(path string) (string, error) {
	return h.ExecOutput(h.Sudoize(fmt.Sprintf("cat %s", shellescape.Quote(path))), exec.HideOutput())
}

// WriteFile writes content into a file with the given mode, creating parent
// directories as needed. The content travels through stdin and is redacted
// from logs.
func (h *Host) WriteFile(path, content, perm string) error {
	return h.Exec(
		h.Sudoize(fmt.Sprintf("install -D -m %s /dev/stdin %s", perm, shellescape.Quote(path))),
		exec.Stdin(content),
		exec.RedactString(content),
	)
}

// WriteUserFile is WriteFile without privilege escalation, for files owned
// by the invoking user
func (h *Host) WriteUserFile(path, content, perm string) error {
	return h.Exec(
		fmt.Sprintf("install -D -m %s /dev/stdin %s", perm, shellescape.Quote(path)),
		exec.Stdin(content),
		exec.RedactString(content),
	)
}

// MoveFile renames a path
func (h *Host) MoveFile(src, dst string) error {
	return h.Exec(h.Sudoize(fmt.Sprintf("mv %s %s", shellescape.Quote(src), shellescape.Quote(dst))))
}

// DeleteDir removes a directory tree
func (h *Host) DeleteDir(path string) error {
	return h.Exec(fmt.Sprintf("rm -rf %s", shellescape.Quote(path)))
}

// MkDir creates a directory and its parents
func (h *Host) MkDir(path string) error {
	return h.Exec(h.Sudoize(fmt.Sprintf("mkdir -p %s", shellescape.Quote(path))))
}

// Mounted returns true when path is a mountpoint
func (h *Host) Mounted(path string) bool {
	return h.Exec(fmt.Sprintf("mountpoint -q %s", shellescape.Quote(path)), exec.HideCommand()) == nil
}

// Chroot runs a command inside the freshly installed root at /mnt
func (h *Host) Chroot(cmd string, opts ...exec.Option) error {
	return h.Exec(fmt.Sprintf("arch-chroot /mnt sh -c %s", shellescape.Quote(cmd)), opts...)
}

// ServiceEnable enables and starts a system service
func (h *Host) ServiceEnable(unit string) error {
	return h.Exec(h.Sudoize(fmt.Sprintf("systemctl enable --now %s", shellescape.Quote(unit))))
}

// ServiceEnabled returns true when a system service is enabled
func (h *Host) ServiceEnabled(unit string) bool {
	return h.Exec(fmt.Sprintf("systemctl is-enabled --quiet %s", shellescape.Quote(unit)), exec.HideCommand()) == nil
}

// UserServiceEnable enables and starts a service in the user's session
func (h *Host) UserServiceEnable(unit string) error {
	return h.Exec(fmt.Sprintf("systemctl --user enable --now %s", shellescape.Quote(unit)))
}

// DaemonReload reloads the service manager configuration
func (h *Host) DaemonReload() error {
	return h.Exec(h.Sudoize("systemctl daemon-reload"))
}

// KernelRelease returns the running kernel's release string
func (h *Host) KernelRelease() (string, error) {
	out, err := h.ExecOutput("uname -r")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

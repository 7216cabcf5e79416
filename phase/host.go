package phase

import "github.com/k0sproject/rig/exec"

// Host is the set of operations phases perform on the machine being
// provisioned. *config.Host implements it.
type Host interface {
	Exec(cmd string, opts ...exec.Option) error
	Execf(cmd string, argsAndOpts ...any) error
	ExecOutput(cmd string, opts ...exec.Option) (string, error)
	Sudoize(cmd string) string
	FileExist(path string) bool
	DirExist(path string) bool
	CommandExist(name string) bool
	LineExist(path, pattern string) bool
	ReadFile(path string) (string, error)
	WriteFile(path, content, perm string) error
	WriteUserFile(path, content, perm string) error
	MoveFile(src, dst string) error
	DeleteDir(path string) error
	MkDir(path string) error
	Mounted(path string) bool
	Chroot(cmd string, opts ...exec.Option) error
	ServiceEnable(unit string) error
	ServiceEnabled(unit string) bool
	UserServiceEnable(unit string) error
	DaemonReload() error
	KernelRelease() (string, error)
}

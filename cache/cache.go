package cache

import (
	"fmt"
	"os"
	"path"

	"github.com/adrg/xdg"
	"golang.org/x/sys/unix"
)

// Dir returns the directory where archmate working files and logs live.
// The privileged install run uses the system cache, the configure run as a
// regular user goes into the XDG state directory.
func Dir() string {
	if os.Geteuid() == 0 {
		return "/var/cache/archmate"
	}
	return path.Join(xdg.StateHome, "archmate")
}

// EnsureDir makes a directory if it doesn't exist
func EnsureDir(dir string) error {
	err := os.MkdirAll(dir, 0755)

	if err == nil || os.IsExist(err) {
		if unix.Access(dir, unix.W_OK) != nil {
			return fmt.Errorf("not writable: %s", dir)
		}
	}

	return err
}

// File returns a path to a file in the cache dir
func File(parts ...string) string {
	parts = append([]string{Dir()}, parts...)
	return path.Join(parts...)
}

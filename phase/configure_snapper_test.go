package phase

import (
	"fmt"
	"strings"
	"testing"

	"github.com/k0sproject/rig/exec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockHost struct {
	files    map[string]string
	perms    map[string]string
	commands []string
	failing  map[string]error
}

func newMockHost() *mockHost {
	return &mockHost{
		files:   map[string]string{},
		perms:   map[string]string{},
		failing: map[string]error{},
	}
}

func (m *mockHost) Exec(cmd string, _ ...exec.Option) error {
	m.commands = append(m.commands, cmd)
	for sub, err := range m.failing {
		if strings.Contains(cmd, sub) {
			return err
		}
	}
	return nil
}

func (m *mockHost) Execf(cmd string, args ...any) error {
	return m.Exec(fmt.Sprintf(cmd, args...))
}

func (m *mockHost) ExecOutput(cmd string, _ ...exec.Option) (string, error) {
	m.commands = append(m.commands, cmd)
	return "", nil
}

func (m *mockHost) Sudoize(cmd string) string { return cmd }

func (m *mockHost) FileExist(path string) bool {
	_, ok := m.files[path]
	return ok
}

func (m *mockHost) DirExist(string) bool     { return false }
func (m *mockHost) CommandExist(string) bool { return false }

func (m *mockHost) LineExist(path, pattern string) bool {
	return strings.Contains(m.files[path], pattern)
}

func (m *mockHost) ReadFile(path string) (string, error) {
	content, ok := m.files[path]
	if !ok {
		return "", fmt.Errorf("no such file: %s", path)
	}
	return content, nil
}

func (m *mockHost) WriteFile(path, content, perm string) error {
	m.files[path] = content
	m.perms[path] = perm
	return nil
}

func (m *mockHost) WriteUserFile(path, content, perm string) error {
	return m.WriteFile(path, content, perm)
}

func (m *mockHost) MoveFile(src, dst string) error {
	m.commands = append(m.commands, fmt.Sprintf("mv %s %s", src, dst))
	content, ok := m.files[src]
	if !ok {
		return fmt.Errorf("no such file: %s", src)
	}
	delete(m.files, src)
	m.files[dst] = content
	return nil
}

func (m *mockHost) DeleteDir(path string) error {
	m.commands = append(m.commands, "rm -rf "+path)
	return nil
}

func (m *mockHost) MkDir(path string) error {
	m.commands = append(m.commands, "mkdir -p "+path)
	return nil
}

func (m *mockHost) Mounted(string) bool { return false }

func (m *mockHost) Chroot(cmd string, _ ...exec.Option) error {
	return m.Exec(cmd)
}

func (m *mockHost) ServiceEnable(unit string) error {
	return m.Exec("systemctl enable --now " + unit)
}

func (m *mockHost) ServiceEnabled(string) bool { return false }

func (m *mockHost) UserServiceEnable(unit string) error {
	return m.Exec("systemctl --user enable --now " + unit)
}

func (m *mockHost) DaemonReload() error {
	return m.Exec("systemctl daemon-reload")
}

func (m *mockHost) KernelRelease() (string, error) { return "6.10.0-arch1-1", nil }

func (m *mockHost) commandIndex(t *testing.T, sub string) int {
	t.Helper()
	for i, cmd := range m.commands {
		if strings.Contains(cmd, sub) {
			return i
		}
	}
	t.Fatalf("no command matching %q in %v", sub, m.commands)
	return -1
}

func TestConfigureSnapperMovesHookAside(t *testing.T) {
	h := newMockHost()
	h.files[snapshotHook] = "[Trigger]"
	h.files[snapperConfig] = `ALLOW_GROUPS=""` + "\n"

	p := &ConfigureSnapper{GenericPhase: GenericPhase{Host: h}}
	require.NoError(t, p.Run())

	moveAside := h.commandIndex(t, fmt.Sprintf("mv %s %s", snapshotHook, snapshotHookAside))
	createConfig := h.commandIndex(t, "create-config")
	moveBack := h.commandIndex(t, fmt.Sprintf("mv %s %s", snapshotHookAside, snapshotHook))
	assert.Less(t, moveAside, createConfig)
	assert.Less(t, createConfig, moveBack)

	assert.True(t, h.FileExist(snapshotHook))
	assert.False(t, h.FileExist(snapshotHookAside))

	assert.Contains(t, h.files[snapperConfig], `ALLOW_GROUPS="wheel"`)
	assert.Equal(t, "0640", h.perms[snapperConfig])

	assert.Contains(t, h.commands, "systemctl enable --now snapper-timeline.timer")
	assert.Contains(t, h.commands, "systemctl enable --now snapper-cleanup.timer")
}

func TestConfigureSnapperRestoresHookOnFailure(t *testing.T) {
	h := newMockHost()
	h.files[snapshotHook] = "[Trigger]"
	h.failing["create-config"] = fmt.Errorf("creating config failed")

	p := &ConfigureSnapper{GenericPhase: GenericPhase{Host: h}}
	require.Error(t, p.Run())

	assert.True(t, h.FileExist(snapshotHook))
	assert.False(t, h.FileExist(snapshotHookAside))
}

func TestConfigureSnapperCleanUpIdempotent(t *testing.T) {
	h := newMockHost()
	h.files[snapshotHook] = "[Trigger]"
	h.failing["create-config"] = fmt.Errorf("creating config failed")

	p := &ConfigureSnapper{GenericPhase: GenericPhase{Host: h}}
	require.Error(t, p.Run())

	moves := len(h.commands)
	p.CleanUp()
	assert.Equal(t, moves, len(h.commands), "restore must not run twice")
	assert.True(t, h.FileExist(snapshotHook))
}

func TestConfigureSnapperWithoutHook(t *testing.T) {
	h := newMockHost()
	h.files[snapperConfig] = ""

	p := &ConfigureSnapper{GenericPhase: GenericPhase{Host: h}}
	require.NoError(t, p.Run())

	for _, cmd := range h.commands {
		assert.NotContains(t, cmd, "mv ")
	}
}

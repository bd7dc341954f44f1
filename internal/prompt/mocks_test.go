package prompt

import (
	"errors"
	"time"

	"github.com/Veraticus/river-dreams/internal/directory"
	"github.com/Veraticus/river-dreams/internal/git"
	"github.com/Veraticus/river-dreams/internal/hardware"
)

type MockTerminalWidth struct {
	width int
	err   error
}

func (m *MockTerminalWidth) GetWidth() (int, error) {
	return m.width, m.err
}

type MockClock struct {
	now time.Time
}

func (m *MockClock) Now() time.Time {
	return m.now
}

type MockEnvReader struct {
	vars map[string]string
}

func (m *MockEnvReader) Get(key string) string {
	return m.vars[key]
}

type MockDisk struct {
	usage hardware.DiskUsage
	err   error
}

func (m *MockDisk) Usage() (hardware.DiskUsage, error) {
	return m.usage, m.err
}

type MockBattery struct {
	charge *hardware.Charge
	err    error
}

func (m *MockBattery) Charge() (*hardware.Charge, error) {
	return m.charge, m.err
}

type MockNetwork struct {
	ip string
}

func (m *MockNetwork) LocalIPv4() (string, bool) {
	return m.ip, m.ip != ""
}

type MockDirectory struct {
	path     string
	err      error
	readOnly bool
}

func (m *MockDirectory) Current() (string, error) {
	return m.path, m.err
}

func (m *MockDirectory) Owned() bool {
	return !m.readOnly
}

type MockRepositoryFinder struct {
	repo *git.Repository
	dirs []string
}

func (m *MockRepositoryFinder) Find(dir string) (*git.Repository, bool) {
	m.dirs = append(m.dirs, dir)
	return m.repo, m.repo != nil
}

type MockScanner struct {
	counts directory.TypeCounts
}

func (m *MockScanner) Scan() directory.TypeCounts {
	return m.counts
}

type MockCommandRunner struct {
	outputs map[string]string
	calls   []string
}

func (m *MockCommandRunner) Run(command string, _ ...string) ([]byte, error) {
	m.calls = append(m.calls, command)
	output, ok := m.outputs[command]
	if !ok {
		return nil, errors.New("command not found")
	}
	return []byte(output), nil
}

// createTestDependencies returns dependencies for an 80 column terminal on a Thursday afternoon
// inside a dirty repository.
func createTestDependencies() *Dependencies {
	return &Dependencies{
		TerminalWidth: &MockTerminalWidth{width: 80},
		Clock:         &MockClock{now: time.Date(2024, time.March, 21, 14, 5, 0, 0, time.UTC)},
		EnvReader:     &MockEnvReader{vars: map[string]string{"VIRTUAL_ENV": "/home/river/project/venv"}},
		Disk:          &MockDisk{usage: hardware.DiskUsage{Percentage: 42}},
		Battery:       &MockBattery{charge: &hardware.Charge{Percentage: 85}},
		Network:       &MockNetwork{ip: "192.168.1.23"},
		Directory:     &MockDirectory{path: "/home/river/project/src"},
		Repositories: &MockRepositoryFinder{repo: &git.Repository{
			Path:      "/home/river/project",
			Reference: git.Branch("main"),
			IsDirty:   true,
		}},
		Scanner: &MockScanner{},
	}
}

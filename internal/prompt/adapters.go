package prompt

import (
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Veraticus/river-dreams/internal/config"
	"github.com/Veraticus/river-dreams/internal/directory"
	"github.com/Veraticus/river-dreams/internal/git"
	"github.com/Veraticus/river-dreams/internal/hardware"
)

// DefaultClock implements Clock using the local time.
type DefaultClock struct{}

// Now returns the current local time.
func (DefaultClock) Now() time.Time {
	return time.Now()
}

// DefaultEnvReader implements EnvReader using os.Getenv.
type DefaultEnvReader struct{}

// Get retrieves an environment variable.
func (e *DefaultEnvReader) Get(key string) string {
	return os.Getenv(key)
}

// NewDefaultDependencies wires the OS-backed implementations selected by cfg.
func NewDefaultDependencies(cfg *config.Config, logger *zap.Logger) *Dependencies {
	if logger == nil {
		logger = zap.NewNop()
	}
	env := &DefaultEnvReader{}
	runner := &hardware.DefaultCommandRunner{}

	deps := &Dependencies{
		TerminalWidth: NewTerminalWidth(env, runner),
		Clock:         DefaultClock{},
		EnvReader:     env,
		Disk:          hardware.Disk{Path: cfg.Disk.Path},
		Battery:       hardware.DefaultBattery(cfg.Battery.SupplyDir),
		Directory:     directory.WorkingDirectory{},
		Scanner:       directory.NewScanner(logger.Named("directory")),
		Logger:        logger,
	}
	if cfg.Network.Enabled {
		deps.Network = hardware.Network{Lister: hardware.OSInterfaces{}}
	}
	if cfg.Git.Enabled {
		deps.Repositories = git.NewResolver(git.GoGitDiscoverer{}, cfg.Git.FallbackBranch, logger.Named("git"))
	}
	return deps
}

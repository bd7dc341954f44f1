package prompt

import (
	"time"

	"go.uber.org/zap"

	"github.com/Veraticus/river-dreams/internal/directory"
	"github.com/Veraticus/river-dreams/internal/git"
	"github.com/Veraticus/river-dreams/internal/hardware"
)

// Dependencies contains all external dependencies
type Dependencies struct {
	TerminalWidth TerminalWidth
	Clock         Clock
	EnvReader     EnvReader
	Disk          DiskProbe
	Battery       hardware.BatterySource
	Network       AddressProbe
	Directory     WorkingDirectory
	Repositories  RepositoryFinder
	Scanner       EntryScanner
	Logger        *zap.Logger
}

// TerminalWidth interface for getting terminal width
type TerminalWidth interface {
	GetWidth() (int, error)
}

// Clock interface for reading the local time
type Clock interface {
	Now() time.Time
}

// EnvReader interface for reading environment variables
type EnvReader interface {
	Get(key string) string
}

// DiskProbe interface for reading disk usage
type DiskProbe interface {
	Usage() (hardware.DiskUsage, error)
}

// AddressProbe interface for finding the local IP address
type AddressProbe interface {
	LocalIPv4() (string, bool)
}

// WorkingDirectory interface for the current directory and its permissions
type WorkingDirectory interface {
	Current() (string, error)
	Owned() bool
}

// RepositoryFinder interface for locating the enclosing Git repository
type RepositoryFinder interface {
	Find(dir string) (*git.Repository, bool)
}

// EntryScanner interface for counting the entries of the current directory
type EntryScanner interface {
	Scan() directory.TypeCounts
}

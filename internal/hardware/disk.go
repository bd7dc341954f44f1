// Package hardware probes the disk, the battery and the network of the machine.
package hardware

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ErrDiskUnavailable is returned when the filesystem statistics can not be read.
var ErrDiskUnavailable = errors.New("can not retrieve the disk information")

// DiskStatus describes how full the disk is.
type DiskStatus int

// Disk statuses.
const (
	DiskLow DiskStatus = iota
	DiskModerate
	DiskHigh
)

// DiskUsage is the used share of a filesystem.
type DiskUsage struct {
	Percentage int
}

// Status returns the status matching the usage percentage.
func (u DiskUsage) Status() DiskStatus {
	switch {
	case u.Percentage < 60:
		return DiskLow
	case u.Percentage < 80:
		return DiskModerate
	default:
		return DiskHigh
	}
}

// Disk reads usage statistics for the filesystem mounted at Path.
type Disk struct {
	Path string
}

// Usage returns the used percentage of the filesystem.
func (d Disk) Usage() (DiskUsage, error) {
	path := d.Path
	if path == "" {
		path = "/"
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return DiskUsage{}, fmt.Errorf("%w: statfs %s: %w", ErrDiskUnavailable, path, err)
	}

	blockSize := uint64(stat.Bsize) //nolint:gosec // Block sizes are positive
	return DiskUsage{Percentage: usagePercentage(blockSize*stat.Blocks, blockSize*stat.Bavail)}, nil
}

// usagePercentage returns the truncated used percentage of total given what is still available.
func usagePercentage(total, available uint64) int {
	if total == 0 || available >= total {
		return 0
	}
	used := total - available
	return int(float64(used) / float64(total) * 100)
}

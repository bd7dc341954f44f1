//go:build darwin

package directory

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// ufHidden is the UF_HIDDEN bit of st_flags.
const ufHidden = 0x00008000

// Queryable reads the UF_HIDDEN flag through lstat.
type Queryable struct{}

// IsHidden reports whether the entry carries UF_HIDDEN.
func (Queryable) IsHidden(dir string, name []byte) (bool, error) {
	path := filepath.Join(dir, string(name))
	var stat unix.Stat_t
	if err := unix.Lstat(path, &stat); err != nil {
		return false, fmt.Errorf("lstat %s: %w", path, err)
	}
	return stat.Flags&ufHidden != 0, nil
}

// DefaultHiddenSource returns the hidden attribute source for this platform.
func DefaultHiddenSource() HiddenAttributeSource {
	return Queryable{}
}

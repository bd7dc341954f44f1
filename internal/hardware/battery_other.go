//go:build !darwin

package hardware

import "github.com/spf13/afero"

// DefaultBattery returns the battery source for this platform.
func DefaultBattery(supplyDir string) BatterySource {
	return SysfsBattery{Fs: afero.NewOsFs(), SupplyDir: supplyDir}
}

//go:build darwin

package hardware

// DefaultBattery returns the battery source for this platform. The supply directory is unused.
func DefaultBattery(string) BatterySource {
	return PmsetBattery{Runner: &DefaultCommandRunner{}}
}

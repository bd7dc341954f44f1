package hardware

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// ChargeStatus describes how much energy is left in the battery.
type ChargeStatus int

// Charge statuses.
const (
	ChargeCritical ChargeStatus = iota
	ChargeLow
	ChargeModerate
	ChargeHigh
)

// Charge is the state of the first battery found.
type Charge struct {
	Percentage int
	IsCharging bool
}

// Status returns the status matching the charge percentage.
func (c Charge) Status() ChargeStatus {
	switch {
	case c.Percentage < 5:
		return ChargeCritical
	case c.Percentage < 30:
		return ChargeLow
	case c.Percentage < 60:
		return ChargeModerate
	default:
		return ChargeHigh
	}
}

// BatterySource reports the battery charge. A nil Charge with a nil error means the machine has
// no battery.
type BatterySource interface {
	Charge() (*Charge, error)
}

// DefaultSupplyDir is where Linux exposes power supplies.
const DefaultSupplyDir = "/sys/class/power_supply"

// SysfsBattery reads the first battery exposed under a power_supply class directory.
type SysfsBattery struct {
	Fs        afero.Fs
	SupplyDir string
}

// Charge returns the charge of the first readable battery.
func (b SysfsBattery) Charge() (*Charge, error) {
	fs := b.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	dir := b.SupplyDir
	if dir == "" {
		dir = DefaultSupplyDir
	}

	supplies, err := afero.ReadDir(fs, dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing power supplies in %s: %w", dir, err)
	}
	sort.Slice(supplies, func(i, j int) bool { return supplies[i].Name() < supplies[j].Name() })

	for _, supply := range supplies {
		charge, err := readSupply(fs, filepath.Join(dir, supply.Name()))
		if err != nil || charge == nil {
			continue
		}
		return charge, nil
	}
	return nil, nil
}

func readSupply(fs afero.Fs, dir string) (*Charge, error) {
	kind, err := readAttribute(fs, dir, "type")
	if err != nil {
		return nil, err
	}
	if kind != "Battery" {
		return nil, nil
	}

	ratio, err := stateOfCharge(fs, dir)
	if err != nil {
		return nil, err
	}

	status, err := readAttribute(fs, dir, "status")
	if err != nil {
		status = "Unknown"
	}

	return &Charge{
		Percentage: ratioToPercentage(ratio),
		IsCharging: status != "Discharging",
	}, nil
}

// stateOfCharge prefers energy counters, then charge counters, then the capacity attribute.
func stateOfCharge(fs afero.Fs, dir string) (float64, error) {
	for _, pair := range [][2]string{{"energy_now", "energy_full"}, {"charge_now", "charge_full"}} {
		now, errNow := readNumber(fs, dir, pair[0])
		full, errFull := readNumber(fs, dir, pair[1])
		if errNow == nil && errFull == nil && full > 0 {
			return now / full, nil
		}
	}

	capacity, err := readNumber(fs, dir, "capacity")
	if err != nil {
		return 0, fmt.Errorf("reading state of charge in %s: %w", dir, err)
	}
	return capacity / 100, nil
}

func readAttribute(fs afero.Fs, dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", path, err)
	}
	return strings.TrimSpace(string(content)), nil
}

func readNumber(fs afero.Fs, dir, name string) (float64, error) {
	value, err := readAttribute(fs, dir, name)
	if err != nil {
		return 0, err
	}
	number, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", name, err)
	}
	return number, nil
}

func ratioToPercentage(ratio float64) int {
	percentage := int(math.Round(ratio * 100))
	return max(0, min(100, percentage))
}

// PmsetBattery asks pmset for the internal battery.
type PmsetBattery struct {
	Runner CommandRunner
}

// Charge returns the charge reported by pmset.
func (b PmsetBattery) Charge() (*Charge, error) {
	runner := b.Runner
	if runner == nil {
		runner = &DefaultCommandRunner{}
	}
	output, err := runner.Run("pmset", "-g", "batt")
	if err != nil {
		return nil, fmt.Errorf("reading battery: %w", err)
	}
	return parsePmset(string(output))
}

var pmsetBatteryLine = regexp.MustCompile(`InternalBattery.*?\t(\d+)%;\s*([^;]+);`)

// parsePmset extracts the first internal battery line of `pmset -g batt`.
func parsePmset(output string) (*Charge, error) {
	match := pmsetBatteryLine.FindStringSubmatch(output)
	if match == nil {
		return nil, nil
	}
	percentage, err := strconv.Atoi(match[1])
	if err != nil {
		return nil, fmt.Errorf("parsing battery percentage %q: %w", match[1], err)
	}
	return &Charge{
		Percentage: max(0, min(100, percentage)),
		IsCharging: strings.TrimSpace(match[2]) != "discharging",
	}, nil
}

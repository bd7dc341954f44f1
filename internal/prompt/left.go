package prompt

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/Veraticus/river-dreams/internal/git"
	"github.com/Veraticus/river-dreams/internal/hardware"
)

// sectionsConstantLength is the display width of the fixed parts of the second prompt line.
const sectionsConstantLength = 42

const noAddress = "No Address Found"

// Renderer writes the prompt sides.
type Renderer struct {
	deps *Dependencies
}

// New creates a renderer over deps.
func New(deps *Dependencies) *Renderer {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Renderer{deps: deps}
}

// Left renders the left prompt. It fails when the terminal width, the disk usage or the current
// directory can not be read; every other source degrades.
func (r *Renderer) Left() (string, error) {
	width, err := r.deps.TerminalWidth.GetWidth()
	if err != nil {
		return "", err
	}
	usage, err := r.deps.Disk.Usage()
	if err != nil {
		return "", err
	}
	cwd, err := r.deps.Directory.Current()
	if err != nil {
		return "", err
	}
	charge := r.charge()
	now := r.deps.Clock.Now()
	repo := r.repository(cwd)

	var sb strings.Builder
	sectionsLength := sectionsConstantLength

	writeTopSeparator(&sb, width)
	sectionsLength += writeAddressSection(&sb, r.address())
	sectionsLength += writeDiskSection(&sb, usage)
	sectionsLength += writeBatterySection(&sb, charge)
	writeCalendarSection(&sb, now)
	writeClockSection(&sb, now)
	writeMiddleSeparator(&sb, width, sectionsLength)
	sb.WriteString(whenRoot(colorize("{", Yellow) + colorize("#", Red) + colorize("}", Yellow)))
	writeExitCodeSection(&sb)
	r.writeVirtualEnvSection(&sb)
	r.writePathSection(&sb, cwd, repo)
	writeGitSection(&sb, repo)
	if !r.deps.Directory.Owned() {
		sb.WriteString(" " + colorize("\ue0a2", Cyan))
	}
	sb.WriteString(" \n")

	return sb.String(), nil
}

func (r *Renderer) charge() *hardware.Charge {
	if r.deps.Battery == nil {
		return nil
	}
	charge, err := r.deps.Battery.Charge()
	if err != nil {
		r.deps.Logger.Debug("battery unavailable", zap.Error(err))
		return nil
	}
	return charge
}

func (r *Renderer) address() string {
	if r.deps.Network == nil {
		return noAddress
	}
	if ip, ok := r.deps.Network.LocalIPv4(); ok {
		return ip
	}
	return noAddress
}

func (r *Renderer) repository(cwd string) *git.Repository {
	if r.deps.Repositories == nil {
		return nil
	}
	repo, ok := r.deps.Repositories.Find(cwd)
	if !ok {
		return nil
	}
	return repo
}

func writeTopSeparator(sb *strings.Builder, width int) {
	for column := range width {
		if column%2 == 0 {
			sb.WriteString(colorize("≥", Yellow))
		} else {
			sb.WriteString(colorize("v", Red))
		}
	}
	sb.WriteString(colorize(":«(", Yellow))
}

func writeAddressSection(sb *strings.Builder, address string) int {
	sb.WriteString(colorize("\ueb34 ", Blue) + " " + address)
	return runewidth.StringWidth(address)
}

func writeDiskSection(sb *strings.Builder, usage hardware.DiskUsage) int {
	var color Color
	switch usage.Status() {
	case hardware.DiskLow:
		color = Green
	case hardware.DiskModerate:
		color = Yellow
	default:
		color = Red
	}
	fmt.Fprintf(sb, "  %s%d%s", colorize("\U000f02ca ", color), usage.Percentage, zshPercent)
	return DigitLength(uint64(usage.Percentage)) //nolint:gosec // Percentages are never negative
}

func writeBatterySection(sb *strings.Builder, charge *hardware.Charge) int {
	if charge == nil {
		return 0
	}
	fmt.Fprintf(sb, "  %s %d%s", batteryGlyph(*charge), charge.Percentage, zshPercent)
	return DigitLength(uint64(charge.Percentage)) + 5 //nolint:gosec // Percentages are never negative
}

func batteryGlyph(charge hardware.Charge) string {
	pick := func(charging, discharging string) string {
		if charge.IsCharging {
			return charging
		}
		return discharging
	}
	switch charge.Status() {
	case hardware.ChargeCritical:
		return colorize(pick("\U000f089f", "\U000f008e"), Red)
	case hardware.ChargeLow:
		return colorize(pick("\U000f12a4", "\U000f12a1"), Red)
	case hardware.ChargeModerate:
		return colorize(pick("\U000f12a5", "\U000f12a2"), Yellow)
	default:
		return colorize(pick("\U000f12a6", "\U000f12a3"), Green)
	}
}

func writeCalendarSection(sb *strings.Builder, now time.Time) {
	sb.WriteString("  " + colorize("\U000f00ed ", Red) + calendarDate(now))
}

func writeClockSection(sb *strings.Builder, now time.Time) {
	var glyph string
	switch FractionOf(now) {
	case Dawn:
		glyph = colorize("\U000f0b4e ", Cyan)
	case Morning:
		glyph = colorize("\U000f05a8 ", Red)
	case Afternoon:
		glyph = colorize("\ue268 ", Blue)
	default:
		glyph = colorize("\U000f0f65 ", Yellow)
	}
	sb.WriteString("  " + glyph + clockTime(now))
}

func writeMiddleSeparator(sb *strings.Builder, width, sectionsLength int) {
	sb.WriteString(colorize(")»:", Yellow))
	for column := range max(0, width-sectionsLength) {
		if column%2 == 0 {
			sb.WriteString(colorize("-", Red))
		} else {
			sb.WriteString(colorize("=", Yellow))
		}
	}
}

func writeExitCodeSection(sb *strings.Builder) {
	sb.WriteString(colorize("{", Yellow))
	sb.WriteString(byExitCode(colorize(zshExitCode, Yellow), colorize(zshExitCode, Red)))
	sb.WriteString(colorize("}⤐ ", Yellow))
}

func (r *Renderer) writeVirtualEnvSection(sb *strings.Builder) {
	if r.deps.EnvReader == nil {
		return
	}
	venv := r.deps.EnvReader.Get("VIRTUAL_ENV")
	if venv == "" {
		return
	}
	name := filepath.Base(venv)
	if name == "/" || name == "." || name == ".." {
		return
	}
	sb.WriteString(" (" + name + ")")
}

// writePathSection shows the directory relative to the repository's parent as "@/<repo>/...",
// or zsh's own %~ outside a repository.
func (r *Renderer) writePathSection(sb *strings.Builder, cwd string, repo *git.Repository) {
	sb.WriteString(" ")
	if repo == nil || isFilesystemRoot(repo.Path) {
		sb.WriteString(colorize(zshHomePath, Red))
		return
	}

	rel, err := filepath.Rel(filepath.Dir(repo.Path), cwd)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		r.deps.Logger.Debug("directory outside repository",
			zap.String("dir", cwd), zap.String("repository", repo.Path))
		sb.WriteString(colorize(zshHomePath, Red))
		return
	}
	sb.WriteString(colorize("@/"+filepath.ToSlash(rel), Red))
}

func isFilesystemRoot(path string) bool {
	return filepath.Dir(path) == path
}

func writeGitSection(sb *strings.Builder, repo *git.Repository) {
	if repo == nil {
		return
	}
	sb.WriteString(colorize(":«(", Yellow))
	if repo.Reference.IsRebase() {
		sb.WriteString(colorize("@rebase", Magenta) + ":")
	}
	sb.WriteString(repo.Reference.String())
	sb.WriteString(colorize(")»", Yellow))
	if repo.IsDirty {
		sb.WriteString(" " + colorize("✗", Cyan))
	}
}

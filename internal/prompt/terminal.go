package prompt

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/Veraticus/river-dreams/internal/hardware"
)

// ErrTerminalSize is returned when no probe can measure the terminal.
var ErrTerminalSize = errors.New("can not retrieve the terminal dimensions")

// widthOverrideEnv forces a terminal width, mostly for tests and scripts.
const widthOverrideEnv = "RIVER_DREAMS_WIDTH"

// DefaultTerminalWidth provides terminal width detection
type DefaultTerminalWidth struct {
	Env    EnvReader
	Runner hardware.CommandRunner

	sizeOf  func(fd int) (width, height int, err error)
	openTTY func() (*os.File, error)
}

// NewTerminalWidth returns a width probe reading env and running commands through runner.
func NewTerminalWidth(env EnvReader, runner hardware.CommandRunner) *DefaultTerminalWidth {
	return &DefaultTerminalWidth{
		Env:     env,
		Runner:  runner,
		sizeOf:  term.GetSize,
		openTTY: func() (*os.File, error) { return os.Open("/dev/tty") },
	}
}

// GetWidth returns the current terminal width
func (t *DefaultTerminalWidth) GetWidth() (int, error) {
	// Priority 1: Explicit override
	if width, ok := positive(t.getenv(widthOverrideEnv)); ok {
		return width, nil
	}

	// Priority 2: COLUMNS environment variable
	if width, ok := positive(t.getenv("COLUMNS")); ok {
		return width, nil
	}

	// Priority 3: Inside tmux, ask it for the window width
	if t.getenv("TMUX") != "" {
		if width, ok := t.commandWidth("tmux", "display-message", "-p", "#{window_width}"); ok {
			return width, nil
		}
	}

	// Priority 4: Standard streams. Stdout is a pipe under command substitution, so stderr goes
	// first.
	if t.sizeOf != nil {
		for _, file := range []*os.File{os.Stderr, os.Stdin, os.Stdout} {
			if width, _, err := t.sizeOf(int(file.Fd())); err == nil && width > 0 {
				return width, nil
			}
		}
	}

	// Priority 5: The controlling terminal
	if t.openTTY != nil && t.sizeOf != nil {
		if tty, err := t.openTTY(); err == nil {
			defer tty.Close()
			if width, _, err := t.sizeOf(int(tty.Fd())); err == nil && width > 0 {
				return width, nil
			}
		}
	}

	// Priority 6: tput
	if width, ok := t.commandWidth("tput", "cols"); ok {
		return width, nil
	}

	return 0, ErrTerminalSize
}

func (t *DefaultTerminalWidth) getenv(key string) string {
	if t.Env == nil {
		return os.Getenv(key)
	}
	return t.Env.Get(key)
}

func (t *DefaultTerminalWidth) commandWidth(command string, args ...string) (int, bool) {
	if t.Runner == nil {
		return 0, false
	}
	output, err := t.Runner.Run(command, args...)
	if err != nil {
		return 0, false
	}
	return positive(strings.TrimSpace(string(output)))
}

func positive(value string) (int, bool) {
	if value == "" {
		return 0, false
	}
	number, err := strconv.Atoi(value)
	if err != nil || number <= 0 {
		return 0, false
	}
	return number, true
}

// Package prompt renders the river-dreams prompt sides in zsh prompt syntax.
package prompt

import "strconv"

// Color is one of the ANSI colors zsh addresses with %F{n}.
type Color int

// ANSI colors used by the prompt.
const (
	Red Color = iota + 1
	Green
	Yellow
	Blue
	Magenta
	Cyan
)

// zsh prompt escapes.
const (
	zshPercent  = "%%"
	zshExitCode = "%?"
	zshJobCount = "%j"
	zshHomePath = "%~"
)

// colorize wraps s in a zsh foreground color.
func colorize(s string, color Color) string {
	return "%F{" + strconv.Itoa(int(color)) + "}" + s + "%f"
}

// whenRoot shows s only for the superuser.
func whenRoot(s string) string {
	return "%(#." + s + ".)"
}

// byExitCode shows onSuccess when the last command exited with zero and onFailure otherwise.
func byExitCode(onSuccess, onFailure string) string {
	return "%(?." + onSuccess + "." + onFailure + ")"
}

// whenJobs shows s only while background jobs exist.
func whenJobs(s string) string {
	return "%(1j." + s + ".)"
}

package directory

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// ErrUnresolvable is returned when neither the OS nor $PWD can name the current directory.
var ErrUnresolvable = errors.New("can not resolve the current directory")

// WorkingDirectory resolves the current directory and its permissions.
type WorkingDirectory struct{}

// Current returns the current directory path, falling back to $PWD when the OS call fails.
func (WorkingDirectory) Current() (string, error) {
	dir, err := os.Getwd()
	if err == nil {
		return dir, nil
	}
	if pwd := os.Getenv("PWD"); pwd != "" && pwd != "." && pwd != ".." {
		return pwd, nil
	}
	return "", fmt.Errorf("%w: %w", ErrUnresolvable, err)
}

// Owned reports whether the user can write to the current directory.
func (WorkingDirectory) Owned() bool {
	return unix.Access(".", unix.W_OK) == nil
}

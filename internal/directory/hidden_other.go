//go:build !darwin

package directory

// DefaultHiddenSource returns the hidden attribute source for this platform.
func DefaultHiddenSource() HiddenAttributeSource {
	return Unsupported{}
}

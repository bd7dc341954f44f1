package directory

// HiddenAttributeSource reports whether the filesystem flags an entry as hidden through an
// attribute other than a leading dot.
type HiddenAttributeSource interface {
	IsHidden(dir string, name []byte) (bool, error)
}

// Unsupported is the source for platforms without a hidden attribute. It never adds a signal.
type Unsupported struct{}

// IsHidden always reports false.
func (Unsupported) IsHidden(string, []byte) (bool, error) {
	return false, nil
}

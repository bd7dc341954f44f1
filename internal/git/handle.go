package git

// Head is what HEAD points at.
type Head struct {
	// Shorthand is the short name of the reference, e.g. "main", or "HEAD" when detached.
	Shorthand string
	// Target is the hexadecimal hash HEAD resolves to, empty when unknown.
	Target string
}

// Handle is an open repository as seen by the resolver.
type Handle interface {
	Head() (Head, error)
	InteractiveRebase() bool
	HeadFile() ([]byte, error)
	DefaultBranch() (string, error)
	Statuses() ([]StatusFlags, error)
	WorkDir() (string, bool)
	GitDir() string
}

// Discoverer finds the repository enclosing a directory.
type Discoverer interface {
	Discover(dir string) (Handle, error)
}

// Package git resolves the state of the Git repository enclosing a directory.
package git

// ReferenceKind tells which member of a Reference is active.
type ReferenceKind int

const (
	// KindBranch is a branch name.
	KindBranch ReferenceKind = iota
	// KindRebaseHash is the abbreviated hash of the commit an interactive rebase stopped at.
	KindRebaseHash
)

// ShortHashLength is the number of hexadecimal characters kept from a rebase hash.
const ShortHashLength = 7

// Reference identifies the current state of a repository.
type Reference struct {
	Kind ReferenceKind
	Name string
}

// Branch returns a branch reference.
func Branch(name string) Reference {
	return Reference{Kind: KindBranch, Name: name}
}

// RebaseHash returns a rebase reference for hash, truncated to ShortHashLength characters.
func RebaseHash(hash string) Reference {
	if len(hash) > ShortHashLength {
		hash = hash[:ShortHashLength]
	}
	return Reference{Kind: KindRebaseHash, Name: hash}
}

// IsRebase reports whether the reference is a rebase hash.
func (r Reference) IsRebase() bool {
	return r.Kind == KindRebaseHash
}

// String returns the branch name or the short hash.
func (r Reference) String() string {
	return r.Name
}

// Repository is the resolved state of a Git repository.
type Repository struct {
	// Path is the working directory, or the metadata directory of a bare repository.
	Path      string
	Reference Reference
	IsDirty   bool
}

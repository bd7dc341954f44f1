package git

import (
	"strings"

	"go.uber.org/zap"
)

// DefaultBranchName is the branch reported when nothing else names one.
const DefaultBranchName = "master"

const headsPrefix = "ref: refs/heads/"

// referenceResolver tries one way of naming the current reference.
type referenceResolver func(h Handle) (Reference, bool)

// Resolver finds the repository enclosing a directory and resolves its state.
type Resolver struct {
	discoverer     Discoverer
	fallbackBranch string
	chain          []referenceResolver
	logger         *zap.Logger
}

// NewResolver creates a resolver. A nil discoverer uses go-git and an empty fallback branch uses
// DefaultBranchName.
func NewResolver(discoverer Discoverer, fallbackBranch string, logger *zap.Logger) *Resolver {
	if discoverer == nil {
		discoverer = GoGitDiscoverer{}
	}
	if fallbackBranch == "" {
		fallbackBranch = DefaultBranchName
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		discoverer:     discoverer,
		fallbackBranch: fallbackBranch,
		chain: []referenceResolver{
			referenceFromHead,
			referenceFromHeadFile,
			referenceFromDefaultBranch,
		},
		logger: logger,
	}
}

// Find returns the repository enclosing dir. The second result is false when there is none.
func (r *Resolver) Find(dir string) (*Repository, bool) {
	handle, err := r.discoverer.Discover(dir)
	if err != nil {
		r.logger.Debug("no repository found", zap.String("dir", dir), zap.Error(err))
		return nil, false
	}

	path := handle.GitDir()
	if workDir, ok := handle.WorkDir(); ok {
		path = workDir
	}

	return &Repository{
		Path:      path,
		Reference: r.resolveReference(handle),
		IsDirty:   r.isDirty(handle),
	}, true
}

func (r *Resolver) resolveReference(h Handle) Reference {
	for _, resolve := range r.chain {
		if ref, ok := resolve(h); ok {
			return ref
		}
	}
	return Branch(r.fallbackBranch)
}

func (r *Resolver) isDirty(h Handle) bool {
	entries, err := h.Statuses()
	if err != nil {
		r.logger.Debug("status unavailable, assuming clean", zap.Error(err))
		return false
	}
	return IsDirty(entries)
}

func referenceFromHead(h Handle) (Reference, bool) {
	head, err := h.Head()
	if err != nil {
		return Reference{}, false
	}
	if h.InteractiveRebase() {
		if len(head.Target) < ShortHashLength {
			return Reference{}, false
		}
		return RebaseHash(head.Target), true
	}
	if head.Shorthand == "" {
		return Reference{}, false
	}
	return Branch(head.Shorthand), true
}

func referenceFromHeadFile(h Handle) (Reference, bool) {
	content, err := h.HeadFile()
	if err != nil {
		return Reference{}, false
	}
	name, ok := strings.CutPrefix(strings.TrimSpace(string(content)), headsPrefix)
	if !ok || name == "" {
		return Reference{}, false
	}
	return Branch(name), true
}

func referenceFromDefaultBranch(h Handle) (Reference, bool) {
	name, err := h.DefaultBranch()
	if err != nil || name == "" {
		return Reference{}, false
	}
	return Branch(name), true
}

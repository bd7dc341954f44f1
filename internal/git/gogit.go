package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// ErrRepositoryNotFound is returned when no repository encloses a directory.
var ErrRepositoryNotFound = errors.New("no repository found")

var errBareRepository = errors.New("repository has no working tree")

// GoGitDiscoverer opens repositories with go-git.
type GoGitDiscoverer struct{}

// Discover opens the repository enclosing dir.
func (GoGitDiscoverer) Discover(dir string) (Handle, error) {
	root, err := findRepositoryRoot(dir)
	if err != nil {
		return nil, err
	}

	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", root, err)
	}

	handle := &goGitHandle{repo: repo}
	if storage, ok := repo.Storer.(*filesystem.Storage); ok {
		handle.gitDir = storage.Filesystem().Root()
	}
	if worktree, err := repo.Worktree(); err == nil {
		handle.worktree = worktree
	}
	return handle, nil
}

// findRepositoryRoot walks up from dir to the first directory holding a .git entry or being a
// bare repository itself.
func findRepositoryRoot(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	for {
		if _, err := os.Stat(filepath.Join(current, gogit.GitDirName)); err == nil {
			return current, nil
		}
		if isBareRepository(current) {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("%w from %s", ErrRepositoryNotFound, dir)
		}
		current = parent
	}
}

func isBareRepository(dir string) bool {
	head, err := os.Stat(filepath.Join(dir, "HEAD"))
	if err != nil || head.IsDir() {
		return false
	}
	for _, name := range []string{"objects", "refs"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !info.IsDir() {
			return false
		}
	}
	return true
}

type goGitHandle struct {
	repo     *gogit.Repository
	worktree *gogit.Worktree
	gitDir   string
}

func (h *goGitHandle) Head() (Head, error) {
	ref, err := h.repo.Head()
	if err != nil {
		return Head{}, fmt.Errorf("read head: %w", err)
	}
	head := Head{Shorthand: ref.Name().Short()}
	if !ref.Hash().IsZero() {
		head.Target = ref.Hash().String()
	}
	return head, nil
}

func (h *goGitHandle) InteractiveRebase() bool {
	if h.gitDir == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(h.gitDir, "rebase-merge", "interactive"))
	return err == nil
}

func (h *goGitHandle) HeadFile() ([]byte, error) {
	path := filepath.Join(h.gitDir, "HEAD")
	content, err := os.ReadFile(path) //nolint:gosec // Path is inside the discovered repository
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return content, nil
}

func (h *goGitHandle) DefaultBranch() (string, error) {
	cfg, err := h.repo.ConfigScoped(config.SystemScope)
	if err != nil {
		return "", fmt.Errorf("read repository config: %w", err)
	}
	return cfg.Init.DefaultBranch, nil
}

func (h *goGitHandle) Statuses() ([]StatusFlags, error) {
	if h.worktree == nil {
		return nil, errBareRepository
	}
	h.worktree.Excludes = h.excludes()
	status, err := h.worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("read worktree status: %w", err)
	}

	entries := make([]StatusFlags, 0, len(status))
	for _, fileStatus := range status {
		entries = append(entries, statusFlags(fileStatus.Staging, fileStatus.Worktree))
	}
	return entries, nil
}

// excludes gathers the ignore patterns that live outside the working tree: the files named by
// core.excludesFile in the system and global configuration, or git's default per-user ignore
// file when none is named. Unreadable sources are skipped.
func (h *goGitHandle) excludes() []gitignore.Pattern {
	root := osfs.New("/")

	var patterns []gitignore.Pattern
	if system, err := gitignore.LoadSystemPatterns(root); err == nil {
		patterns = append(patterns, system...)
	}
	if global, err := gitignore.LoadGlobalPatterns(root); err == nil {
		patterns = append(patterns, global...)
	}
	if h.excludesFileConfigured() {
		return patterns
	}

	path, ok := defaultExcludesFile()
	if !ok {
		return patterns
	}
	if fallback, err := readExcludesFile(path); err == nil {
		patterns = append(patterns, fallback...)
	}
	return patterns
}

func (h *goGitHandle) excludesFileConfigured() bool {
	cfg, err := h.repo.ConfigScoped(config.SystemScope)
	if err != nil || cfg.Raw == nil {
		return false
	}
	return cfg.Raw.Section("core").Option("excludesfile") != ""
}

// defaultExcludesFile returns $XDG_CONFIG_HOME/git/ignore, or ~/.config/git/ignore.
func defaultExcludesFile() (string, bool) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git", "ignore"), true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, ".config", "git", "ignore"), true
}

func readExcludesFile(path string) ([]gitignore.Pattern, error) {
	content, err := os.ReadFile(path) //nolint:gosec // Path comes from git's own lookup rules
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	var patterns []gitignore.Pattern
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return patterns, nil
}

func (h *goGitHandle) WorkDir() (string, bool) {
	if h.worktree == nil {
		return "", false
	}
	return h.worktree.Filesystem.Root(), true
}

func (h *goGitHandle) GitDir() string {
	return h.gitDir
}

// statusFlags converts go-git's two-column status codes into status bits.
func statusFlags(staging, worktree gogit.StatusCode) StatusFlags {
	var flags StatusFlags

	switch staging {
	case gogit.Added, gogit.Copied:
		flags |= IndexNew
	case gogit.Modified:
		flags |= IndexModified
	case gogit.Deleted:
		flags |= IndexDeleted
	case gogit.Renamed:
		flags |= IndexRenamed
	case gogit.UpdatedButUnmerged:
		flags |= Conflicted
	}

	switch worktree {
	case gogit.Untracked:
		flags |= WtNew
	case gogit.Modified:
		flags |= WtModified
	case gogit.Deleted:
		flags |= WtDeleted
	case gogit.Renamed:
		flags |= WtRenamed
	case gogit.UpdatedButUnmerged:
		flags |= Conflicted
	}

	return flags
}

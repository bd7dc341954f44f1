package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandle struct {
	head          Head
	headErr       error
	rebase        bool
	headFile      string
	headFileErr   error
	defaultBranch string
	statuses      []StatusFlags
	statusErr     error
	workDir       string
	gitDir        string
}

func (f *fakeHandle) Head() (Head, error)     { return f.head, f.headErr }
func (f *fakeHandle) InteractiveRebase() bool { return f.rebase }

func (f *fakeHandle) HeadFile() ([]byte, error) {
	if f.headFileErr != nil {
		return nil, f.headFileErr
	}
	return []byte(f.headFile), nil
}

func (f *fakeHandle) DefaultBranch() (string, error) {
	if f.defaultBranch == "" {
		return "", errors.New("no default branch configured")
	}
	return f.defaultBranch, nil
}

func (f *fakeHandle) Statuses() ([]StatusFlags, error) { return f.statuses, f.statusErr }

func (f *fakeHandle) WorkDir() (string, bool) { return f.workDir, f.workDir != "" }
func (f *fakeHandle) GitDir() string          { return f.gitDir }

type fakeDiscoverer struct {
	handle *fakeHandle
	err    error
	dirs   []string
}

func (f *fakeDiscoverer) Discover(dir string) (Handle, error) {
	f.dirs = append(f.dirs, dir)
	if f.err != nil {
		return nil, f.err
	}
	return f.handle, nil
}

var errNoHead = errors.New("reference not found")

func TestResolverReference(t *testing.T) {
	tests := []struct {
		name     string
		fallback string
		handle   *fakeHandle
		want     Reference
	}{
		{
			name:   "branch from head",
			handle: &fakeHandle{head: Head{Shorthand: "main", Target: "0123456789abcdef"}},
			want:   Branch("main"),
		},
		{
			name: "rebase hash truncated",
			handle: &fakeHandle{
				head:   Head{Shorthand: "HEAD", Target: "abcdef1234567890"},
				rebase: true,
			},
			want: RebaseHash("abcdef1"),
		},
		{
			name: "rebase with short target falls through to head file",
			handle: &fakeHandle{
				head:     Head{Shorthand: "HEAD", Target: "abc"},
				rebase:   true,
				headFile: "ref: refs/heads/feature\n",
			},
			want: Branch("feature"),
		},
		{
			name: "unborn branch from head file",
			handle: &fakeHandle{
				headErr:  errNoHead,
				headFile: "ref: refs/heads/develop\n",
			},
			want: Branch("develop"),
		},
		{
			name: "configured default branch",
			handle: &fakeHandle{
				headErr:       errNoHead,
				headFileErr:   errors.New("permission denied"),
				defaultBranch: "trunk",
			},
			want: Branch("trunk"),
		},
		{
			name: "head file without branch prefix",
			handle: &fakeHandle{
				headErr:       errNoHead,
				headFile:      "0123456789abcdef0123456789abcdef01234567\n",
				defaultBranch: "trunk",
			},
			want: Branch("trunk"),
		},
		{
			name:   "fallback to master",
			handle: &fakeHandle{headErr: errNoHead, headFileErr: errNoHead},
			want:   Branch("master"),
		},
		{
			name:     "configured fallback",
			fallback: "main",
			handle:   &fakeHandle{headErr: errNoHead, headFileErr: errNoHead},
			want:     Branch("main"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.handle.workDir = "/work/project"
			resolver := NewResolver(&fakeDiscoverer{handle: tt.handle}, tt.fallback, nil)

			repo, ok := resolver.Find("/work/project/src")
			require.True(t, ok)
			assert.Equal(t, tt.want, repo.Reference)
		})
	}
}

func TestResolverDirty(t *testing.T) {
	tests := []struct {
		name      string
		statuses  []StatusFlags
		statusErr error
		want      bool
	}{
		{name: "clean", statuses: []StatusFlags{0}, want: false},
		{name: "untracked", statuses: []StatusFlags{WtNew}, want: true},
		{name: "ignored only", statuses: []StatusFlags{Ignored}, want: false},
		{name: "status error", statusErr: errBareRepository, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handle := &fakeHandle{
				head:      Head{Shorthand: "main"},
				statuses:  tt.statuses,
				statusErr: tt.statusErr,
				workDir:   "/work/project",
			}
			resolver := NewResolver(&fakeDiscoverer{handle: handle}, "", nil)

			repo, ok := resolver.Find("/work/project")
			require.True(t, ok)
			assert.Equal(t, tt.want, repo.IsDirty)
		})
	}
}

func TestResolverPath(t *testing.T) {
	withWorkDir := &fakeHandle{head: Head{Shorthand: "main"}, workDir: "/work/project", gitDir: "/work/project/.git"}
	repo, ok := NewResolver(&fakeDiscoverer{handle: withWorkDir}, "", nil).Find("/work/project")
	require.True(t, ok)
	assert.Equal(t, "/work/project", repo.Path)

	bare := &fakeHandle{head: Head{Shorthand: "main"}, gitDir: "/srv/project.git"}
	repo, ok = NewResolver(&fakeDiscoverer{handle: bare}, "", nil).Find("/srv/project.git")
	require.True(t, ok)
	assert.Equal(t, "/srv/project.git", repo.Path)
}

func TestResolverNoRepository(t *testing.T) {
	discoverer := &fakeDiscoverer{err: ErrRepositoryNotFound}
	resolver := NewResolver(discoverer, "", nil)

	repo, ok := resolver.Find("/tmp/elsewhere")
	assert.False(t, ok)
	assert.Nil(t, repo)
	assert.Equal(t, []string{"/tmp/elsewhere"}, discoverer.dirs)
}

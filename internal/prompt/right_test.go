package prompt

import (
	"testing"

	"github.com/Veraticus/river-dreams/internal/directory"
)

const jobsSection = "%(1j. %F{5}\uf085%f %j.)"

func TestRight(t *testing.T) {
	tests := []struct {
		name   string
		counts directory.TypeCounts
		want   string
	}{
		{
			name:   "empty directory",
			counts: directory.TypeCounts{},
			want:   jobsSection + "\n",
		},
		{
			name:   "thousands separators and uncolored files",
			counts: directory.TypeCounts{Directories: 3, Files: 1234, Hiddens: 2},
			want: " %F{3}\uf07b %f3" +
				" \uf15c 1,234" +
				" %F{1}\U000f0209 %f2" +
				jobsSection + "\n",
		},
		{
			name: "every type in order",
			counts: directory.TypeCounts{
				Files:       1,
				Directories: 2,
				Sockets:     3,
				Fifos:       4,
				Blocks:      5,
				Characters:  6,
				Symlinks:    7,
				Hiddens:     8,
				Temporaries: 1000000,
			},
			want: " %F{3}\uf07b %f2" +
				" \uf15c 1" +
				" %F{6}\U000f1119 %f3" +
				" %F{4}\U000f07e6 %f4" +
				" %F{5}\U000f01d6 %f5" +
				" %F{2}\U000f18f4 %f6" +
				" %F{4}\U000f0337 %f7" +
				" %F{1}\U000f0209 %f8" +
				" %F{5}\U000f18f9 %f1,000,000" +
				jobsSection + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := createTestDependencies()
			deps.Scanner = &MockScanner{counts: tt.counts}

			if got := New(deps).Right(); got != tt.want {
				t.Errorf("Right() mismatch\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestInit(t *testing.T) {
	want := "setopt promptsubst;\n" +
		"export VIRTUAL_ENV_DISABLE_PROMPT=1;\n" +
		"PROMPT='$(river-dreams prompt left)';\n" +
		"RPROMPT='$(river-dreams prompt right)';\n"

	if got := Init("river-dreams"); got != want {
		t.Errorf("Init() mismatch\n got: %q\nwant: %q", got, want)
	}
}

package directory

import (
	"io/fs"
	"testing"
)

func TestEntryFlags(t *testing.T) {
	tests := []struct {
		name       string
		dotSpecial bool
		temporary  bool
	}{
		{name: ".", dotSpecial: true},
		{name: "..", dotSpecial: true},
		{name: "..."},
		{name: ".hidden"},
		{name: "~", temporary: true},
		{name: "file~", temporary: true},
		{name: "~file"},
		{name: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{Name: []byte(tt.name)}
			if got := e.IsDotSpecial(); got != tt.dotSpecial {
				t.Errorf("IsDotSpecial() = %v, want %v", got, tt.dotSpecial)
			}
			if got := e.IsTemporary(); got != tt.temporary {
				t.Errorf("IsTemporary() = %v, want %v", got, tt.temporary)
			}
		})
	}
}

func TestTypeFromMode(t *testing.T) {
	tests := []struct {
		mode fs.FileMode
		want Type
	}{
		{0, TypeFile},
		{fs.ModeDir, TypeDirectory},
		{fs.ModeSymlink, TypeSymlink},
		{fs.ModeSocket, TypeSocket},
		{fs.ModeNamedPipe, TypeFifo},
		{fs.ModeDevice, TypeBlock},
		{fs.ModeDevice | fs.ModeCharDevice, TypeCharacter},
		{fs.ModeIrregular, TypeFile},
	}

	for _, tt := range tests {
		if got := TypeFromMode(tt.mode); got != tt.want {
			t.Errorf("TypeFromMode(%v) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

// Package directory scans the current directory and classifies its entries.
package directory

import (
	"bytes"
	"io/fs"
)

// Type is the coarse kind of a directory entry as reported by the directory reader.
type Type int

// Entry types. Anything the reader cannot tag more precisely is a TypeFile.
const (
	TypeFile Type = iota
	TypeDirectory
	TypeSocket
	TypeFifo
	TypeBlock
	TypeCharacter
	TypeSymlink
)

var (
	dotName    = []byte(".")
	dotDotName = []byte("..")
)

// Entry is a single raw directory entry. Name is a length-bounded view of the entry name and is
// never assumed to carry a terminator.
type Entry struct {
	Name []byte
	Type Type
}

// IsDotSpecial reports whether the entry is the "." or ".." listing.
func (e Entry) IsDotSpecial() bool {
	return bytes.Equal(e.Name, dotName) || bytes.Equal(e.Name, dotDotName)
}

// IsTemporary reports whether the entry name ends with a tilde.
func (e Entry) IsTemporary() bool {
	return len(e.Name) > 0 && e.Name[len(e.Name)-1] == '~'
}

func (e Entry) hasLeadingDot() bool {
	return len(e.Name) > 0 && e.Name[0] == '.'
}

// TypeFromMode maps the type bits of a file mode to an entry type.
func TypeFromMode(mode fs.FileMode) Type {
	switch {
	case mode&fs.ModeDir != 0:
		return TypeDirectory
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	case mode&fs.ModeSocket != 0:
		return TypeSocket
	case mode&fs.ModeNamedPipe != 0:
		return TypeFifo
	case mode&fs.ModeCharDevice != 0:
		return TypeCharacter
	case mode&fs.ModeDevice != 0:
		return TypeBlock
	default:
		return TypeFile
	}
}

// TypeCounts holds the total of each entry type found by a scan.
type TypeCounts struct {
	Files       int
	Directories int
	Sockets     int
	Fifos       int
	Blocks      int
	Characters  int
	Symlinks    int
	Hiddens     int
	Temporaries int
}

// Types returns the sum of the seven type counters.
func (c TypeCounts) Types() int {
	return c.Files + c.Directories + c.Sockets + c.Fifos + c.Blocks + c.Characters + c.Symlinks
}

func (c *TypeCounts) addType(t Type) {
	switch t {
	case TypeDirectory:
		c.Directories++
	case TypeSocket:
		c.Sockets++
	case TypeFifo:
		c.Fifos++
	case TypeBlock:
		c.Blocks++
	case TypeCharacter:
		c.Characters++
	case TypeSymlink:
		c.Symlinks++
	default:
		c.Files++
	}
}

package directory

import (
	"errors"
	"io"

	"go.uber.org/zap"
)

// Scanner counts the entry types of a directory.
type Scanner struct {
	Reader DirReader
	Hidden HiddenAttributeSource
	Logger *zap.Logger
}

// NewScanner creates a scanner backed by the OS directory reader and the platform hidden
// attribute source.
func NewScanner(logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		Reader: OSDirReader{},
		Hidden: DefaultHiddenSource(),
		Logger: logger,
	}
}

// Scan counts the entries of the current directory.
func (s *Scanner) Scan() TypeCounts {
	return s.ScanDir(".")
}

// ScanDir counts the entries of dir. It never fails: an unreadable directory yields zero counts
// and a read error mid-stream keeps what was counted so far.
func (s *Scanner) ScanDir(dir string) TypeCounts {
	var counts TypeCounts

	stream, err := s.Reader.Open(dir)
	if err != nil {
		s.logger().Debug("directory unreadable", zap.String("dir", dir), zap.Error(err))
		return counts
	}
	defer func() {
		if err := stream.Close(); err != nil {
			s.logger().Debug("closing directory stream", zap.Error(err))
		}
	}()

	for {
		entry, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.logger().Debug("directory scan interrupted", zap.String("dir", dir), zap.Error(err))
			break
		}
		s.classify(dir, entry, &counts)
	}

	return counts
}

func (s *Scanner) classify(dir string, entry Entry, counts *TypeCounts) {
	if entry.IsDotSpecial() {
		return
	}

	if entry.IsTemporary() {
		counts.Temporaries++
	}

	hidden, err := s.isHidden(dir, entry)
	switch {
	case err != nil:
		s.logger().Debug("hidden attribute unknown", zap.ByteString("name", entry.Name), zap.Error(err))
	case hidden:
		counts.Hiddens++
	}

	counts.addType(entry.Type)
}

func (s *Scanner) isHidden(dir string, entry Entry) (bool, error) {
	if entry.hasLeadingDot() {
		return true, nil
	}
	if s.Hidden == nil {
		return false, nil
	}
	return s.Hidden.IsHidden(dir, entry.Name)
}

func (s *Scanner) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

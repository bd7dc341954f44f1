package directory

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// DirReader opens streams of raw directory entries.
type DirReader interface {
	Open(path string) (EntryStream, error)
}

// EntryStream yields directory entries one at a time. Next returns io.EOF once the stream is
// exhausted.
type EntryStream interface {
	Next() (Entry, error)
	Close() error
}

const defaultBatchSize = 64

// OSDirReader reads entries through os.File.ReadDir, which reports each entry's type from the
// directory listing itself without a stat call.
type OSDirReader struct {
	BatchSize int
}

// Open opens the directory at path.
func (r OSDirReader) Open(path string) (EntryStream, error) {
	file, err := os.Open(path) //nolint:gosec // Directory path comes from the caller
	if err != nil {
		return nil, fmt.Errorf("open directory %s: %w", path, err)
	}
	batchSize := r.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &osEntryStream{file: file, batchSize: batchSize}, nil
}

type osEntryStream struct {
	file      *os.File
	batch     []fs.DirEntry
	batchSize int
}

func (s *osEntryStream) Next() (Entry, error) {
	if len(s.batch) == 0 {
		batch, err := s.file.ReadDir(s.batchSize)
		if len(batch) == 0 {
			if err == nil || errors.Is(err, io.EOF) {
				return Entry{}, io.EOF
			}
			return Entry{}, fmt.Errorf("read directory %s: %w", s.file.Name(), err)
		}
		s.batch = batch
	}

	dirEntry := s.batch[0]
	s.batch = s.batch[1:]
	return Entry{
		Name: []byte(dirEntry.Name()),
		Type: TypeFromMode(dirEntry.Type()),
	}, nil
}

func (s *osEntryStream) Close() error {
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("close directory %s: %w", s.file.Name(), err)
	}
	return nil
}

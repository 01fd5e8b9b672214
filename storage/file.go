package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"

	"taskmgr/task"
)

// FileStorage implements Storage using one encoded record per line.
type FileStorage[T Record] struct {
	filename string
	decode   func(line string) (T, error)
	logger   zerolog.Logger
}

// NewFileStorage returns a line-format store at filename. decode turns one
// line back into a record, e.g. task.Decode.
func NewFileStorage[T Record](filename string, decode func(string) (T, error), logger zerolog.Logger) *FileStorage[T] {
	return &FileStorage[T]{
		filename: filename,
		decode:   decode,
		logger:   logger.With().Str("file", filename).Logger(),
	}
}

// Save writes every record, one per line. A record whose line would not decode
// fails the save before the file is touched.
func (s *FileStorage[T]) Save(items []T) error {
	lines := make([]string, len(items))
	for i, item := range items {
		line := item.Encode()
		if err := s.checkLine(line); err != nil {
			return task.SerializationErrorf("record %d cannot be stored: %v", item.GetID(), err)
		}
		lines[i] = line
	}

	if err := writeFileAtomic(s.filename, []byte(strings.Join(lines, "\n"))); err != nil {
		return err
	}
	s.logger.Debug().
		Int("records", len(items)).
		Msg("saved records")
	return nil
}

// Load reads every non-blank line. A single malformed line fails the whole
// load.
func (s *FileStorage[T]) Load() ([]T, error) {
	data, err := os.ReadFile(s.filename)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug().Msg("no data file yet")
		return []T{}, nil
	}
	if err != nil {
		return nil, task.IOError("read "+s.filename, err)
	}

	items := []T{}
	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		item, err := s.decode(line)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", s.filename, n+1, err)
		}
		items = append(items, item)
	}

	s.logger.Debug().
		Int("records", len(items)).
		Msg("loaded records")
	return items, nil
}

// checkLine makes sure line is a single line that decodes.
func (s *FileStorage[T]) checkLine(line string) error {
	if strings.ContainsAny(line, "\r\n") {
		return errors.New("value contains a line break")
	}
	_, err := s.decode(line)
	return err
}

// writeFileAtomic replaces filename with data so that readers see either the
// old or the new content, never a partial write.
func writeFileAtomic(filename string, data []byte) error {
	if err := renameio.WriteFile(filename, data, 0644); err != nil {
		return task.IOError("write "+filename, err)
	}
	return nil
}

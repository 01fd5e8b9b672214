package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"taskmgr/task"
)

// validator is implemented by records that can check their own invariants
// after being decoded from an untrusted source.
type validator interface {
	Validate() error
}

// JSONStorage implements Storage using a JSON file holding one array.
// Unlike the line format it round-trips any field content.
type JSONStorage[T any] struct {
	filename string
	logger   zerolog.Logger
}

func NewJSONStorage[T any](filename string, logger zerolog.Logger) *JSONStorage[T] {
	return &JSONStorage[T]{
		filename: filename,
		logger:   logger.With().Str("file", filename).Logger(),
	}
}

func (s *JSONStorage[T]) Save(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return task.SerializationErrorf("encode %s: %v", s.filename, err)
	}

	if err := writeFileAtomic(s.filename, data); err != nil {
		return err
	}
	s.logger.Debug().
		Int("records", len(items)).
		Msg("saved records")
	return nil
}

func (s *JSONStorage[T]) Load() ([]T, error) {
	data, err := os.ReadFile(s.filename)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug().Msg("no data file yet")
		return []T{}, nil
	}
	if err != nil {
		return nil, task.IOError("read "+s.filename, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}

	items := []T{}
	if err := json.Unmarshal(data, &items); err != nil {
		var kindErr *task.Error
		if errors.As(err, &kindErr) {
			return nil, fmt.Errorf("%s: %w", s.filename, err)
		}
		return nil, task.SerializationErrorf("decode %s: %v", s.filename, err)
	}

	for i, item := range items {
		if v, ok := any(item).(validator); ok {
			if err := v.Validate(); err != nil {
				return nil, fmt.Errorf("%s record %d: %w", s.filename, i+1, err)
			}
		}
	}

	s.logger.Debug().
		Int("records", len(items)).
		Msg("loaded records")
	return items, nil
}

// Package docstore persists a collection of records as a single JSON array
// document on local disk.
//
// Every mutation loads the whole document, applies a caller-supplied
// function to the in-memory slice and writes the result back through a
// temporary file that is renamed over the target, so readers never observe a
// partially written document. Mutations on one Store are serialized; loads
// may run concurrently with each other but not with a mutation.
package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sbilibin2017/gw-ticket-registry/internal/logger"
)

// ErrCorruptDocument is returned when the backing file exists but does not
// hold a JSON array of the expected records.
var ErrCorruptDocument = errors.New("corrupt document")

const defaultFileMode os.FileMode = 0o600

// Store is a JSON array document of T backed by one file.
type Store[T any] struct {
	path string
	mode os.FileMode
	mu   sync.RWMutex
}

// Option configures a Store.
type Option func(*options)

type options struct {
	mode os.FileMode
}

// WithFileMode sets the permissions of the written document.
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) { o.mode = mode }
}

// New returns a Store backed by the file at path. The file and its parent
// directory are created on the first mutation.
func New[T any](path string, opts ...Option) *Store[T] {
	o := options{mode: defaultFileMode}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T]{path: path, mode: o.mode}
}

// Path returns the backing file path.
func (s *Store[T]) Path() string { return s.path }

// Load returns the current collection. A missing file yields an empty
// collection.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.read()
}

// Mutate loads the collection, passes it to fn and persists whatever fn
// returns. When fn fails nothing is written and its error is returned as is.
func (s *Store[T]) Mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.read()
	if err != nil {
		return err
	}

	next, err := fn(docs)
	if err != nil {
		return err
	}

	if err := s.write(next); err != nil {
		logger.Log.Errorw("document write failed", "path", s.path, "error", err)
		return err
	}

	logger.Log.Debugw("document written", "path", s.path, "records", len(next))
	return nil
}

func (s *Store[T]) read() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		logger.Log.Errorw("document is not a JSON array", "path", s.path)
		return nil, fmt.Errorf("%s: %w", s.path, ErrCorruptDocument)
	}

	docs := []T{}
	if err := json.Unmarshal(trimmed, &docs); err != nil {
		logger.Log.Errorw("document cannot be decoded", "path", s.path, "error", err)
		return nil, fmt.Errorf("%s: %w: %v", s.path, ErrCorruptDocument, err)
	}
	return docs, nil
}

func (s *Store[T]) write(docs []T) error {
	if docs == nil {
		docs = []T{}
	}

	b, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	f, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmp)
		}
	}()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Chmod(s.mode); err != nil {
		_ = f.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	success = true
	return nil
}

// Package pkg provides shared utilities for indentect.
package pkg

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Spool is an append-only, disk-backed sequence of items of type T. It keeps
// large scan results out of memory: items are gob-encoded to a temp file on
// Append and streamed back with Range.
type Spool[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	Range(fn func(index uint64, item T) error) error
	Close() error
}

type spoolImpl[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
}

// NewSpool creates a Spool backed by a fresh temp file.
func NewSpool[T any]() (Spool[T], error) {
	file, err := os.CreateTemp("", "indentect-spool-*.gob")
	if err != nil {
		return nil, fmt.Errorf("failed to create spool file: %w", err)
	}

	slog.Debug("created spool", "path", file.Name())

	return &spoolImpl[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

// Append encodes one item at the end of the spool.
func (s *spoolImpl[T]) Append(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.encoder.Encode(item); err != nil {
		slog.Error("failed to encode spool item", "path", s.path, "index", s.length, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	s.length++

	return nil
}

// Len returns the number of items appended so far.
func (s *spoolImpl[T]) Len() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.length
}

// Path returns the location of the backing file.
func (s *spoolImpl[T]) Path() string {
	return s.path
}

// Range decodes every item in append order, stopping at the first error the
// callback returns.
func (s *spoolImpl[T]) Range(fn func(index uint64, item T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.path)
	if err != nil {
		slog.Error("failed to open spool for range", "path", s.path, "error", err)
		return fmt.Errorf("failed to open spool: %w", err)
	}

	defer func() {
		_ = file.Close()
	}()

	decoder := gob.NewDecoder(file)

	var item T

	for i := range s.length {
		if err := decoder.Decode(&item); err != nil {
			slog.Error("failed to decode spool item", "path", s.path, "index", i, "error", err)
			return fmt.Errorf("failed to decode item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

// Close releases the backing file and removes it from disk.
func (s *spoolImpl[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}

	if err := s.file.Close(); err != nil {
		slog.Error("failed to close spool", "path", s.path, "error", err)
		return err
	}

	s.file = nil

	if err := os.Remove(s.path); err != nil {
		slog.Warn("failed to remove spool file", "path", s.path, "error", err)
	}

	return nil
}

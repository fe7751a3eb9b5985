// Package leaked holds the local set of known compromised passwords.
// A Set is filled once at startup and never mutated afterwards, so it is
// safe for concurrent readers.
package leaked

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dtroode/passguard/internal/model"
)

// Fallback is used when no list could be loaded.
var Fallback = []string{
	"password", "123456", "123456789", "12345",
	"12345678", "qwerty", "abc123", "password1",
	"admin", "letmein", "welcome", "monkey",
}

// Set is an immutable set of compromised passwords.
type Set struct {
	items map[string]struct{}
}

// New builds a Set from the given passwords. Entries are trimmed and
// empty ones skipped.
func New(passwords ...string) *Set {
	s := &Set{items: make(map[string]struct{}, len(passwords))}
	for _, p := range passwords {
		if p = strings.TrimSpace(p); p != "" {
			s.items[p] = struct{}{}
		}
	}
	return s
}

// Parse reads one password per line.
func Parse(r io.Reader) (*Set, error) {
	s := &Set{items: make(map[string]struct{})}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if p := strings.TrimSpace(scanner.Text()); p != "" {
			s.items[p] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaked passwords: %w", err)
	}

	return s, nil
}

// LoadFile parses the list at path.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open leaked passwords file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// LoadObject parses the list stored under key in object storage.
func LoadObject(ctx context.Context, storage model.Storage, key string) (*Set, error) {
	exists, err := storage.Exists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to check leaked passwords object: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("leaked passwords object %q: %w", key, fs.ErrNotExist)
	}

	rc, err := storage.Download(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to download leaked passwords object: %w", err)
	}
	defer rc.Close()

	return Parse(rc)
}

// Source is one place a list can be loaded from.
type Source func(ctx context.Context) (*Set, error)

// FileSource loads from a local file.
func FileSource(path string) Source {
	return func(context.Context) (*Set, error) { return LoadFile(path) }
}

// ObjectSource loads from object storage.
func ObjectSource(storage model.Storage, key string) Source {
	return func(ctx context.Context) (*Set, error) { return LoadObject(ctx, storage, key) }
}

// Load tries each source in order and returns the first non-empty set.
// If every source fails, the Fallback list is returned along with the
// joined errors so the caller can log them.
func Load(ctx context.Context, sources ...Source) (*Set, error) {
	var errs []error
	for _, src := range sources {
		s, err := src(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if s.Len() == 0 {
			errs = append(errs, errors.New("leaked passwords list is empty"))
			continue
		}
		return s, nil
	}

	return New(Fallback...), errors.Join(errs...)
}

// Contains reports whether password is an exact member of the set.
func (s *Set) Contains(password string) bool {
	if s == nil {
		return false
	}
	_, ok := s.items[password]
	return ok
}

// Len returns the number of passwords in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Package memory implements the in-memory content store. Every mutation
// builds a fresh slice and swaps it in with a single assignment, so readers
// interleaved between writes always observe a whole collection, never a
// partial write.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/eishan-studio/eishan/internal/domain/project"
	"github.com/eishan-studio/eishan/internal/repository"
)

// ProjectStore implements project.Repository over an ordered slice.
type ProjectStore struct {
	mu      sync.RWMutex
	records []project.Record
}

// NewProjectStore creates an empty project store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{}
}

// Insert prepends the record. Title uniqueness is caller discipline.
func (s *ProjectStore) Insert(_ context.Context, rec *project.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]project.Record, 0, len(s.records)+1)
	next = append(next, *rec)
	next = append(next, s.records...)
	s.records = next
	return nil
}

// Get returns the record with the given ID.
func (s *ProjectStore) Get(_ context.Context, id string) (*project.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.ID == id {
			out := rec
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetByTitle returns the first record whose title matches.
func (s *ProjectStore) GetByTitle(_ context.Context, title string) (*project.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.Title == title {
			out := rec
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

// List returns a copy of the ordered collection.
func (s *ProjectStore) List(_ context.Context) ([]project.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]project.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Update replaces the record with the given ID in place, preserving order.
func (s *ProjectStore) Update(_ context.Context, id string, rec *project.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]project.Record, len(s.records))
	copy(next, s.records)
	for i, existing := range next {
		if existing.ID == id {
			next[i] = *rec
			s.records = next
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes the record with the given ID.
func (s *ProjectStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]project.Record, 0, len(s.records))
	found := false
	for _, rec := range s.records {
		if rec.ID == id {
			found = true
			continue
		}
		next = append(next, rec)
	}
	if !found {
		return repository.ErrNotFound
	}
	s.records = next
	return nil
}

// DeleteByTitle removes every record matching the title and returns the
// count. Removing zero records is not an error.
func (s *ProjectStore) DeleteByTitle(_ context.Context, title string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]project.Record, 0, len(s.records))
	removed := 0
	for _, rec := range s.records {
		if rec.Title == title {
			removed++
			continue
		}
		next = append(next, rec)
	}
	s.records = next
	return removed, nil
}

// Search returns records whose title contains the query, case-sensitively.
func (s *ProjectStore) Search(_ context.Context, query string) ([]project.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]project.Record, 0, len(s.records))
	for _, rec := range s.records {
		if strings.Contains(rec.Title, query) {
			out = append(out, rec)
		}
	}
	return out, nil
}

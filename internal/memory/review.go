package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/eishan-studio/eishan/internal/domain/review"
	"github.com/eishan-studio/eishan/internal/repository"
)

// ReviewStore implements review.Repository over an ordered slice.
type ReviewStore struct {
	mu      sync.RWMutex
	reviews []review.Review
}

// NewReviewStore creates an empty review store.
func NewReviewStore() *ReviewStore {
	return &ReviewStore{}
}

// Insert prepends the review.
func (s *ReviewStore) Insert(_ context.Context, rev *review.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]review.Review, 0, len(s.reviews)+1)
	next = append(next, *rev)
	next = append(next, s.reviews...)
	s.reviews = next
	return nil
}

// Get returns the review with the given ID.
func (s *ReviewStore) Get(_ context.Context, id int64) (*review.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rev := range s.reviews {
		if rev.ID == id {
			out := rev
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

// List returns a copy of the ordered collection.
func (s *ReviewStore) List(_ context.Context) ([]review.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]review.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, nil
}

// Update replaces the review with the given ID in place, preserving order.
func (s *ReviewStore) Update(_ context.Context, id int64, rev *review.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]review.Review, len(s.reviews))
	copy(next, s.reviews)
	for i, existing := range next {
		if existing.ID == id {
			next[i] = *rev
			s.reviews = next
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes the review with the given ID.
func (s *ReviewStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]review.Review, 0, len(s.reviews))
	found := false
	for _, rev := range s.reviews {
		if rev.ID == id {
			found = true
			continue
		}
		next = append(next, rev)
	}
	if !found {
		return repository.ErrNotFound
	}
	s.reviews = next
	return nil
}

// Search returns reviews whose name contains the query, case-sensitively.
func (s *ReviewStore) Search(_ context.Context, query string) ([]review.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]review.Review, 0, len(s.reviews))
	for _, rev := range s.reviews {
		if strings.Contains(rev.Name, query) {
			out = append(out, rev)
		}
	}
	return out, nil
}

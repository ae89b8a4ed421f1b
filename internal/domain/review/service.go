package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/eishan-studio/eishan/internal/repository"
)

// Service handles review operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new review service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// CreateRequest defines review creation inputs. ID is optional; a
// time-derived value is assigned when it is zero.
type CreateRequest struct {
	ID    int64
	Name  string
	Role  string
	Text  string
	Image string
}

func (r CreateRequest) validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Role, validation.Required),
		validation.Field(&r.Text, validation.Required),
	)
}

// Create adds a review at the head of the collection.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Review, error) {
	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	id := req.ID
	if id == 0 {
		id = s.now().UnixMilli()
	}

	rev := &Review{
		ID:    id,
		Name:  req.Name,
		Role:  req.Role,
		Text:  req.Text,
		Image: req.Image,
	}

	if err := s.repo.Insert(ctx, rev); err != nil {
		return nil, fmt.Errorf("creating review: %w", err)
	}
	return rev, nil
}

// Get fetches a review by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Review, error) {
	rev, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("getting review: %w", err)
	}
	return rev, nil
}

// List returns the full ordered collection.
func (s *Service) List(ctx context.Context) ([]Review, error) {
	return s.repo.List(ctx)
}

// UpdateRequest defines the replacement fields for an edit.
type UpdateRequest struct {
	Name  string
	Role  string
	Text  string
	Image string
}

func (r UpdateRequest) validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Role, validation.Required),
		validation.Field(&r.Text, validation.Required),
	)
}

// Update replaces the review with the given ID, preserving its position.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*Review, error) {
	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	rev := &Review{
		ID:    id,
		Name:  req.Name,
		Role:  req.Role,
		Text:  req.Text,
		Image: req.Image,
	}

	if err := s.repo.Update(ctx, id, rev); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("updating review: %w", err)
	}
	return rev, nil
}

// Remove deletes the review with the given ID.
func (s *Service) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("removing review: %w", err)
	}
	s.logger.Info("review removed", "id", id)
	return nil
}

// Search returns reviews whose name contains the query. Matching is
// case-sensitive substring containment; an empty query returns everything.
func (s *Service) Search(ctx context.Context, query string) ([]Review, error) {
	if query == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

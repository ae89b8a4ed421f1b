package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/eishan-studio/eishan/internal/repository"
	"github.com/google/uuid"
)

// Service handles project operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Title    string
	Category string
	Desc     string
	FullDesc string
	Image    string
	Featured bool
	Year     string
	Location string
	Client   string
	Area     string
}

// Create publishes a new project at the head of the collection.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Record, error) {
	if err := validateCreate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	rec := &Record{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Category:  req.Category,
		Desc:      req.Desc,
		FullDesc:  req.FullDesc,
		Image:     req.Image,
		Featured:  req.Featured,
		Year:      req.Year,
		Location:  req.Location,
		Client:    req.Client,
		Area:      req.Area,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return rec, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id string) (*Record, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return rec, nil
}

// GetByTitle fetches the first project matching a title.
func (s *Service) GetByTitle(ctx context.Context, title string) (*Record, error) {
	rec, err := s.repo.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project by title: %w", err)
	}
	return rec, nil
}

// List returns the full ordered collection.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

// Featured returns the projects flagged for the featured slider.
func (s *Service) Featured(ctx context.Context) ([]Record, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	featured := make([]Record, 0, len(all))
	for _, rec := range all {
		if rec.Featured {
			featured = append(featured, rec)
		}
	}
	return featured, nil
}

// UpdateRequest defines the replacement fields for an edit.
type UpdateRequest struct {
	Title    string
	Category string
	Desc     string
	FullDesc string
	Image    string
	Featured bool
	Year     string
	Location string
	Client   string
	Area     string
}

// Update replaces the record with the given ID, preserving its position.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Record, error) {
	if err := validateUpdate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		ID:        existing.ID,
		Title:     req.Title,
		Category:  req.Category,
		Desc:      req.Desc,
		FullDesc:  req.FullDesc,
		Image:     req.Image,
		Featured:  req.Featured,
		Year:      req.Year,
		Location:  req.Location,
		Client:    req.Client,
		Area:      req.Area,
		CreatedAt: existing.CreatedAt,
	}

	if err := s.repo.Update(ctx, id, rec); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("updating project: %w", err)
	}
	return rec, nil
}

// UpdateByTitle replaces the first record whose title matches originalTitle.
// Kept for the dashboard's title-keyed edit flow; resolution goes through
// the surrogate ID so colliding titles only ever touch the first match.
func (s *Service) UpdateByTitle(ctx context.Context, originalTitle string, req UpdateRequest) (*Record, error) {
	existing, err := s.GetByTitle(ctx, originalTitle)
	if err != nil {
		return nil, err
	}
	return s.Update(ctx, existing.ID, req)
}

// Remove deletes the record with the given ID.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("removing project: %w", err)
	}
	s.logger.Info("project removed", "id", id)
	return nil
}

// RemoveByTitle deletes every record matching the title and returns how many
// were removed.
func (s *Service) RemoveByTitle(ctx context.Context, title string) (int, error) {
	if strings.TrimSpace(title) == "" {
		return 0, ErrInvalidInput
	}
	removed, err := s.repo.DeleteByTitle(ctx, title)
	if err != nil {
		return 0, fmt.Errorf("removing projects by title: %w", err)
	}
	if removed > 0 {
		s.logger.Info("projects removed", "title", title, "count", removed)
	}
	return removed, nil
}

// Search returns projects whose title contains the query. Matching is
// case-sensitive substring containment; an empty query returns everything.
func (s *Service) Search(ctx context.Context, query string) ([]Record, error) {
	if query == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

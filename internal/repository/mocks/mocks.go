package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/eishan-studio/eishan/internal/domain/project"
	"github.com/eishan-studio/eishan/internal/domain/review"
)

var (
	_ project.Repository = (*ProjectRepository)(nil)
	_ review.Repository  = (*ReviewRepository)(nil)
)

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Insert(ctx context.Context, rec *project.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id string) (*project.Record, error) {
	args := m.Called(ctx, id)
	if rec, ok := args.Get(0).(*project.Record); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) GetByTitle(ctx context.Context, title string) (*project.Record, error) {
	args := m.Called(ctx, title)
	if rec, ok := args.Get(0).(*project.Record); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context) ([]project.Record, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Record); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, id string, rec *project.Record) error {
	args := m.Called(ctx, id, rec)
	return args.Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProjectRepository) DeleteByTitle(ctx context.Context, title string) (int, error) {
	args := m.Called(ctx, title)
	return args.Int(0), args.Error(1)
}

func (m *ProjectRepository) Search(ctx context.Context, query string) ([]project.Record, error) {
	args := m.Called(ctx, query)
	if list, ok := args.Get(0).([]project.Record); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ReviewRepository is a mock for review.Repository.
type ReviewRepository struct {
	mock.Mock
}

func (m *ReviewRepository) Insert(ctx context.Context, rev *review.Review) error {
	args := m.Called(ctx, rev)
	return args.Error(0)
}

func (m *ReviewRepository) Get(ctx context.Context, id int64) (*review.Review, error) {
	args := m.Called(ctx, id)
	if rev, ok := args.Get(0).(*review.Review); ok {
		return rev, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ReviewRepository) List(ctx context.Context) ([]review.Review, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]review.Review); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ReviewRepository) Update(ctx context.Context, id int64, rev *review.Review) error {
	args := m.Called(ctx, id, rev)
	return args.Error(0)
}

func (m *ReviewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ReviewRepository) Search(ctx context.Context, query string) ([]review.Review, error) {
	args := m.Called(ctx, query)
	if list, ok := args.Get(0).([]review.Review); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SessionStore is a mock for repository.SessionStore.
type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) Put(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *SessionStore) Get(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *SessionStore) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

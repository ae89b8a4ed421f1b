package project_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eishan-studio/eishan/internal/domain/project"
	"github.com/eishan-studio/eishan/internal/repository"
	"github.com/eishan-studio/eishan/internal/repository/mocks"
)

func TestProjectService_CreateAssignsID(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Insert", ctx, mock.Anything).Return(nil)

	svc := project.NewService(repo, nil)
	rec, err := svc.Create(ctx, project.CreateRequest{
		Title:    "فيلا الياسمين",
		Category: "سكني",
		Desc:     "فيلا عصرية",
	})
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)
	require.False(t, rec.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestProjectService_CreateValidation(t *testing.T) {
	ctx := context.Background()

	svc := project.NewService(&mocks.ProjectRepository{}, nil)

	_, err := svc.Create(ctx, project.CreateRequest{Category: "سكني", Desc: "وصف"})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = svc.Create(ctx, project.CreateRequest{Title: "عنوان", Desc: "وصف"})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = svc.Create(ctx, project.CreateRequest{Title: "عنوان", Category: "سكني"})
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestProjectService_GetTranslatesNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "missing").Return((*project.Record)(nil), repository.ErrNotFound)

	svc := project.NewService(repo, nil)
	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestProjectService_UpdatePreservesIdentity(t *testing.T) {
	ctx := context.Background()

	existing := &project.Record{ID: "p1", Title: "قديم", Category: "سكني", Desc: "وصف"}
	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "p1").Return(existing, nil)
	repo.On("Update", ctx, "p1", mock.MatchedBy(func(rec *project.Record) bool {
		return rec.ID == "p1" && rec.Title == "جديد" && rec.CreatedAt.Equal(existing.CreatedAt)
	})).Return(nil)

	svc := project.NewService(repo, nil)
	rec, err := svc.Update(ctx, "p1", project.UpdateRequest{
		Title:    "جديد",
		Category: "سكني",
		Desc:     "وصف",
	})
	require.NoError(t, err)
	require.Equal(t, "p1", rec.ID)
	repo.AssertExpectations(t)
}

func TestProjectService_UpdateByTitleResolvesFirstMatch(t *testing.T) {
	ctx := context.Background()

	existing := &project.Record{ID: "p1", Title: "مكرر", Category: "سكني", Desc: "وصف"}
	repo := &mocks.ProjectRepository{}
	repo.On("GetByTitle", ctx, "مكرر").Return(existing, nil)
	repo.On("Get", ctx, "p1").Return(existing, nil)
	repo.On("Update", ctx, "p1", mock.Anything).Return(nil)

	svc := project.NewService(repo, nil)
	rec, err := svc.UpdateByTitle(ctx, "مكرر", project.UpdateRequest{
		Title:    "جديد",
		Category: "سكني",
		Desc:     "وصف",
	})
	require.NoError(t, err)
	require.Equal(t, "p1", rec.ID)
	repo.AssertExpectations(t)
}

func TestProjectService_RemoveByTitle(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("DeleteByTitle", ctx, "مكرر").Return(2, nil)

	svc := project.NewService(repo, nil)
	removed, err := svc.RemoveByTitle(ctx, "مكرر")
	require.NoError(t, err)
	require.Equal(t, 2, removed)

	_, err = svc.RemoveByTitle(ctx, "   ")
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestProjectService_Featured(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("List", ctx).Return([]project.Record{
		{ID: "p1", Featured: true},
		{ID: "p2"},
		{ID: "p3", Featured: true},
	}, nil)

	svc := project.NewService(repo, nil)
	featured, err := svc.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	require.Equal(t, "p1", featured[0].ID)
	require.Equal(t, "p3", featured[1].ID)
}

func TestProjectService_SearchEmptyQueryLists(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("List", ctx).Return([]project.Record{{ID: "p1"}}, nil)

	svc := project.NewService(repo, nil)
	recs, err := svc.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eishan-studio/eishan/internal/domain/project"
	"github.com/eishan-studio/eishan/internal/domain/review"
	"github.com/eishan-studio/eishan/internal/memory"
	"github.com/eishan-studio/eishan/internal/seed"
)

func TestLoadPreservesDisplayOrder(t *testing.T) {
	ctx := context.Background()
	projectSvc := project.NewService(memory.NewProjectStore(), nil)
	reviewSvc := review.NewService(memory.NewReviewStore(), nil)

	require.NoError(t, seed.Load(ctx, projectSvc, reviewSvc))

	projects, err := projectSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 4)
	require.Equal(t, "فيلا الياسمين", projects[0].Title)
	require.Equal(t, "شقة النخيل", projects[3].Title)
	require.True(t, projects[0].Featured)

	reviews, err := reviewSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	require.Equal(t, int64(1), reviews[0].ID)
	require.Equal(t, "خالد العتيبي", reviews[0].Name)
	require.Equal(t, int64(2), reviews[1].ID)
}

package review_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eishan-studio/eishan/internal/domain/review"
	"github.com/eishan-studio/eishan/internal/repository"
	"github.com/eishan-studio/eishan/internal/repository/mocks"
)

func TestReviewService_CreateDerivesID(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ReviewRepository{}
	repo.On("Insert", ctx, mock.Anything).Return(nil)

	svc := review.NewService(repo, nil)
	before := time.Now().UnixMilli()
	rev, err := svc.Create(ctx, review.CreateRequest{
		Name: "خالد العتيبي",
		Role: "مالك فيلا",
		Text: "تجربة ممتازة",
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, rev.ID, before)
	repo.AssertExpectations(t)
}

func TestReviewService_CreateKeepsExplicitID(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ReviewRepository{}
	repo.On("Insert", ctx, mock.MatchedBy(func(rev *review.Review) bool {
		return rev.ID == 7
	})).Return(nil)

	svc := review.NewService(repo, nil)
	rev, err := svc.Create(ctx, review.CreateRequest{
		ID:   7,
		Name: "منى الزهراني",
		Role: "عميلة",
		Text: "شكراً",
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), rev.ID)
	repo.AssertExpectations(t)
}

func TestReviewService_CreateValidation(t *testing.T) {
	ctx := context.Background()

	svc := review.NewService(&mocks.ReviewRepository{}, nil)

	_, err := svc.Create(ctx, review.CreateRequest{Role: "عميل", Text: "نص"})
	require.ErrorIs(t, err, review.ErrInvalidInput)

	_, err = svc.Create(ctx, review.CreateRequest{Name: "اسم", Text: "نص"})
	require.ErrorIs(t, err, review.ErrInvalidInput)

	_, err = svc.Create(ctx, review.CreateRequest{Name: "اسم", Role: "عميل"})
	require.ErrorIs(t, err, review.ErrInvalidInput)
}

func TestReviewService_UpdateTranslatesNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ReviewRepository{}
	repo.On("Update", ctx, int64(99), mock.Anything).Return(repository.ErrNotFound)

	svc := review.NewService(repo, nil)
	_, err := svc.Update(ctx, 99, review.UpdateRequest{Name: "اسم", Role: "عميل", Text: "نص"})
	require.ErrorIs(t, err, review.ErrReviewNotFound)
}

func TestReviewService_Remove(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ReviewRepository{}
	repo.On("Delete", ctx, int64(1)).Return(nil)

	svc := review.NewService(repo, nil)
	require.NoError(t, svc.Remove(ctx, 1))

	repo.On("Delete", ctx, int64(2)).Return(repository.ErrNotFound)
	require.ErrorIs(t, svc.Remove(ctx, 2), review.ErrReviewNotFound)
}

func TestReviewService_SearchEmptyQueryLists(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ReviewRepository{}
	repo.On("List", ctx).Return([]review.Review{{ID: 1}}, nil)

	svc := review.NewService(repo, nil)
	revs, err := svc.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, revs, 1)
	repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

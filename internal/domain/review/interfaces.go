package review

import "context"

// Repository holds the ordered review collection.
type Repository interface {
	Insert(ctx context.Context, rev *Review) error
	Get(ctx context.Context, id int64) (*Review, error)
	List(ctx context.Context) ([]Review, error)
	Update(ctx context.Context, id int64, rev *Review) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]Review, error)
}

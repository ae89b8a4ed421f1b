package project

import "context"

// Repository holds the ordered project collection.
type Repository interface {
	Insert(ctx context.Context, rec *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	GetByTitle(ctx context.Context, title string) (*Record, error)
	List(ctx context.Context) ([]Record, error)
	Update(ctx context.Context, id string, rec *Record) error
	Delete(ctx context.Context, id string) error
	DeleteByTitle(ctx context.Context, title string) (int, error)
	Search(ctx context.Context, query string) ([]Record, error)
}

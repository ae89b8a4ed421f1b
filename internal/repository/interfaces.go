package repository

import "context"

// SessionStore persists the single durable session key
type SessionStore interface {
	Put(ctx context.Context, token string) error
	Get(ctx context.Context) (string, error)
	Delete(ctx context.Context) error
}

package auth

import "context"

// Store persists the durable session key across restarts. It holds at most
// one token; Get returns repository.ErrNotFound when no session is stored.
type Store interface {
	Put(ctx context.Context, token string) error
	Get(ctx context.Context) (string, error)
	Delete(ctx context.Context) error
}

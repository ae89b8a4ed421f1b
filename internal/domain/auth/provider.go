package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/eishan-studio/eishan/internal/repository"
)

// mockPassword is the only password the simulated backend accepts.
const mockPassword = "password"

// mockUserID is the fixed account every successful sign-in resolves to.
const mockUserID = "user_123"

// defaultUserName is used when sign-in has no display name to attach.
const defaultUserName = "مدير النظام"

// Config configures the mock session provider.
type Config struct {
	// Secret signs session tokens. Required.
	Secret string
	// TTL is session lifetime; zero means seven days.
	TTL time.Duration
	// Latency simulates the network delay of the real auth backend on every
	// call. Zero disables the delay.
	Latency time.Duration
}

// Provider is the mock session provider. Sign-in succeeds only for the
// literal mock password, sign-up always succeeds, and the resulting session
// survives restarts through the durable Store until an explicit sign-out.
// Consumers observe changes through Subscribe.
type Provider struct {
	store   Store
	secret  []byte
	ttl     time.Duration
	latency time.Duration
	logger  *slog.Logger
	now     func() time.Time

	mu      sync.Mutex
	current *Session
	subs    []func(*Session)
}

// NewProvider creates a provider backed by the given durable store.
func NewProvider(store Store, cfg Config, logger *slog.Logger) *Provider {
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 7 * 24 * time.Hour
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Provider{
		store:   store,
		secret:  []byte(cfg.Secret),
		ttl:     ttl,
		latency: cfg.Latency,
		logger:  logger,
		now:     time.Now,
	}
}

// Restore loads the persisted session key, if any. Expired or malformed
// tokens are discarded silently. Called once at startup before subscribers
// attach, so it does not notify.
func (p *Provider) Restore(ctx context.Context) error {
	token, err := p.store.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("reading session store: %w", err)
	}

	sess, err := parseToken(p.secret, token, p.now())
	if err != nil {
		p.logger.Debug("discarding stored session", "error", err)
		if err := p.store.Delete(ctx); err != nil {
			return fmt.Errorf("clearing stale session: %w", err)
		}
		return nil
	}

	p.mu.Lock()
	p.current = sess
	p.mu.Unlock()
	p.logger.Info("session restored", "user", sess.User.Email)
	return nil
}

// SignInRequest defines sign-in inputs.
type SignInRequest struct {
	Email    string
	Password string
}

func (r SignInRequest) validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// SignIn authenticates against the simulated backend. It succeeds iff the
// password equals the mock literal.
func (p *Provider) SignIn(ctx context.Context, req SignInRequest) (*Session, error) {
	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := p.sleep(ctx, p.latency); err != nil {
		return nil, err
	}
	if req.Password != mockPassword {
		return nil, ErrInvalidCredentials
	}

	user := User{ID: mockUserID, Email: req.Email, Name: defaultUserName}
	return p.establish(ctx, user)
}

// SignUpRequest defines sign-up inputs.
type SignUpRequest struct {
	Name     string
	Email    string
	Password string
}

func (r SignUpRequest) validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// SignUp registers an account on the simulated backend. It always succeeds.
func (p *Provider) SignUp(ctx context.Context, req SignUpRequest) (*Session, error) {
	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := p.sleep(ctx, p.latency); err != nil {
		return nil, err
	}

	user := User{ID: mockUserID, Email: req.Email, Name: req.Name}
	return p.establish(ctx, user)
}

// SignOut clears the session and deletes the durable key.
func (p *Provider) SignOut(ctx context.Context) error {
	if err := p.sleep(ctx, p.latency/2); err != nil {
		return err
	}
	if err := p.store.Delete(ctx); err != nil {
		return fmt.Errorf("deleting session key: %w", err)
	}

	p.mu.Lock()
	p.current = nil
	p.mu.Unlock()

	p.logger.Info("signed out")
	p.notify(nil)
	return nil
}

// Current returns the active session, or nil.
func (p *Provider) Current() *Session {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Present reports whether a session is active. Satisfies view.SessionSource.
func (p *Provider) Present() bool {
	return p.Current() != nil
}

// Subscribe registers fn to run on every session establish or clear. The
// argument is the new session, nil after sign-out.
func (p *Provider) Subscribe(fn func(*Session)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subs = append(p.subs, fn)
}

func (p *Provider) establish(ctx context.Context, user User) (*Session, error) {
	token, expires, err := mintToken(p.secret, user, p.now(), p.ttl)
	if err != nil {
		return nil, err
	}
	sess := &Session{Token: token, User: user, ExpiresAt: expires}

	if err := p.store.Put(ctx, token); err != nil {
		return nil, fmt.Errorf("persisting session key: %w", err)
	}

	p.mu.Lock()
	p.current = sess
	p.mu.Unlock()

	p.logger.Info("session established", "user", user.Email)
	p.notify(sess)
	return sess, nil
}

func (p *Provider) notify(sess *Session) {
	p.mu.Lock()
	subs := make([]func(*Session), len(p.subs))
	copy(subs, p.subs)
	p.mu.Unlock()
	for _, fn := range subs {
		fn(sess)
	}
}

// sleep blocks for the simulated latency, honoring context cancellation.
func (p *Provider) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Package mount keeps the live header instances of rendered pages. Each page
// view mounts its own header; the browser refers to it by an opaque token.
package mount

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/haryokuncoro/portfolio-website/internal/components/header"
)

const tokenName = "header_mount"

var (
	// ErrInvalidToken is returned for tokens that fail verification.
	ErrInvalidToken = errors.New("mount: invalid token")
	// ErrNotMounted is returned when the instance was unmounted or expired.
	ErrNotMounted = errors.New("mount: header not mounted")
)

type instance struct {
	header   *header.Header
	lastSeen time.Time
}

// Registry owns mounted headers. It holds at most a fixed number of them;
// mounting past the limit evicts the longest-idle header.
type Registry struct {
	codec  *securecookie.SecureCookie
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time

	mu        sync.Mutex
	instances *lru.Cache[uuid.UUID, *instance]
}

// NewRegistry creates a registry. The secret must be at least 64 bytes: the
// first 32 sign tokens, the next 32 encrypt them.
func NewRegistry(secret []byte, ttl time.Duration, maxInstances int, logger *slog.Logger) (*Registry, error) {
	if len(secret) < 64 {
		return nil, fmt.Errorf("mount secret must be at least 64 bytes, got %d", len(secret))
	}
	if maxInstances <= 0 {
		return nil, fmt.Errorf("max mounted headers must be positive, got %d", maxInstances)
	}
	if logger == nil {
		logger = slog.Default()
	}

	codec := securecookie.New(secret[:32], secret[32:64])
	codec.MaxAge(0)

	instances, err := lru.New[uuid.UUID, *instance](maxInstances)
	if err != nil {
		return nil, fmt.Errorf("failed to create mount cache: %w", err)
	}

	return &Registry{
		codec:     codec,
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
		instances: instances,
	}, nil
}

// Mount creates a new closed header and returns the token that addresses it.
// The returned header is a snapshot for rendering; later transitions go
// through the registry.
func (r *Registry) Mount(opts ...header.Option) (string, *header.Header, error) {
	id := uuid.New()

	token, err := r.codec.Encode(tokenName, id.String())
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode mount token: %w", err)
	}

	h := header.New(opts...)

	snapshot := *h

	r.mu.Lock()
	evicted := r.instances.Add(id, &instance{header: h, lastSeen: r.now()})
	r.mu.Unlock()

	if evicted {
		r.logger.Debug("idle header evicted to make room")
	}
	r.logger.Debug("header mounted", "instance", id)
	return token, &snapshot, nil
}

// Toggle flips the panel of the header named by token and returns a snapshot
// of the new state.
func (r *Registry) Toggle(token string) (*header.Header, error) {
	return r.apply(token, (*header.Header).Toggle)
}

// Close collapses the panel of the header named by token.
func (r *Registry) Close(token string) (*header.Header, error) {
	return r.apply(token, (*header.Header).Close)
}

// ActivateLink closes the panel as a side effect of following the link at
// index. The bool reports whether index named a link.
func (r *Registry) ActivateLink(token string, index int) (*header.Header, bool, error) {
	var found bool
	h, err := r.apply(token, func(h *header.Header) {
		_, found = h.ActivateLink(index)
	})
	return h, found, err
}

// Unmount destroys the header named by token and discards its state.
func (r *Registry) Unmount(token string) error {
	id, err := r.decode(token)
	if err != nil {
		return err
	}

	r.mu.Lock()
	ok := r.instances.Remove(id)
	r.mu.Unlock()

	if !ok {
		return ErrNotMounted
	}
	r.logger.Debug("header unmounted", "instance", id)
	return nil
}

// Len returns the number of mounted headers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.instances.Len()
}

// Sweep unmounts headers idle for longer than the ttl and returns how many
// were removed. A zero ttl disables expiry.
func (r *Registry) Sweep(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for _, id := range r.instances.Keys() {
		inst, ok := r.instances.Peek(id)
		if ok && now.Sub(inst.lastSeen) > r.ttl {
			r.instances.Remove(id)
			removed++
		}
	}
	return removed
}

// Run sweeps on every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(r.now()); n > 0 {
				r.logger.Info("expired headers unmounted", "count", n)
			}
		}
	}
}

func (r *Registry) apply(token string, fn func(*header.Header)) (*header.Header, error) {
	id, err := r.decode(token)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	inst, ok := r.instances.Get(id)
	if !ok {
		return nil, ErrNotMounted
	}
	fn(inst.header)
	inst.lastSeen = r.now()

	snapshot := *inst.header
	return &snapshot, nil
}

func (r *Registry) decode(token string) (uuid.UUID, error) {
	var raw string
	if err := r.codec.Decode(tokenName, token, &raw); err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}

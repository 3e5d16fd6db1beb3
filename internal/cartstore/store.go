// Package cartstore keeps the visitor's live session cart in Redis. It is the
// surface the recovery flow rewrites when a signed link is redeemed.
package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"

	"github.com/ekorolev/cart-recovery/internal/model"
)

const keyPrefix = "cart:session:"

//go:generate mockgen -source=store.go -destination=../mocks/cartstore/mock.go -package=mocks

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Store reads and rewrites session carts.
type Store struct {
	cache cache
}

// New creates a session cart store backed by the given cache.
func New(cache cache) *Store {
	return &Store{cache: cache}
}

// Get returns the live cart for a session. A session with no cart yet yields
// an empty snapshot.
func (s *Store) Get(ctx context.Context, strategy retry.Strategy, sessionID string) (model.CartSnapshot, error) {
	raw, err := s.cache.GetWithRetry(ctx, strategy, keyPrefix+sessionID)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.CartSnapshot{}, nil
		}

		return model.CartSnapshot{}, fmt.Errorf("get session cart: %w", err)
	}

	var snapshot model.CartSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return model.CartSnapshot{}, fmt.Errorf("unmarshal session cart: %w", err)
	}

	return snapshot, nil
}

// Replace empties the session cart and fills it with the given snapshot.
func (s *Store) Replace(ctx context.Context, strategy retry.Strategy, sessionID string, snapshot model.CartSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal session cart: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, keyPrefix+sessionID, string(data)); err != nil {
		return fmt.Errorf("set session cart: %w", err)
	}

	return nil
}

package newsletter

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrUnavailable = errors.New("newsletter storage unavailable")

type Subscription struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Store records newsletter signups. Subscribing an address that is
// already on the list is a success, not a conflict.
type Store interface {
	Subscribe(ctx context.Context, email string) (Subscription, error)
	Ping(ctx context.Context) error
}

type MemStore struct {
	mu      sync.Mutex
	byEmail map[string]Subscription
}

func NewMemStore() *MemStore {
	return &MemStore{byEmail: make(map[string]Subscription)}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Subscribe(ctx context.Context, email string) (Subscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	if sub, ok := s.byEmail[email]; ok {
		return sub, nil
	}

	sub := Subscription{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	s.byEmail[email] = sub
	return sub, nil
}

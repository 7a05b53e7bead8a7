// Package autosave debounces editor changes and keeps in-flight drafts in
// Redis so a crashed session can be recovered before its last save landed.
package autosave

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pactum/api/internal/contract"
)

// ErrNoDraft is returned when no draft exists for a contract id.
var ErrNoDraft = errors.New("no draft")

// Draft is the Redis payload for an unsaved document state.
type Draft struct {
	ContractID string            `json:"contract_id"`
	Document   contract.Document `json:"document"`
	SavedAt    time.Time         `json:"saved_at"`
}

// DraftStore keeps drafts in Redis under a common prefix with a TTL, so
// abandoned drafts age out on their own.
type DraftStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewDraftStore connects to Redis and verifies the connection.
func NewDraftStore(redisURL string, ttl time.Duration) (*DraftStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return NewDraftStoreWithClient(client, ttl), nil
}

// NewDraftStoreWithClient wraps an existing Redis client.
func NewDraftStoreWithClient(client *redis.Client, ttl time.Duration) *DraftStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &DraftStore{
		client: client,
		prefix: "draft:",
		ttl:    ttl,
	}
}

func (s *DraftStore) key(contractID string) string {
	return s.prefix + contractID
}

// Put stores the current draft for a contract, resetting its TTL.
func (s *DraftStore) Put(ctx context.Context, contractID string, doc contract.Document) error {
	payload, err := json.Marshal(Draft{
		ContractID: contractID,
		Document:   doc,
		SavedAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	if err := s.client.Set(ctx, s.key(contractID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Get returns the stored draft for a contract, or ErrNoDraft.
func (s *DraftStore) Get(ctx context.Context, contractID string) (Draft, error) {
	payload, err := s.client.Get(ctx, s.key(contractID)).Result()
	if errors.Is(err, redis.Nil) {
		return Draft{}, ErrNoDraft
	}
	if err != nil {
		return Draft{}, fmt.Errorf("lookup draft: %w", err)
	}
	var draft Draft
	if err := json.Unmarshal([]byte(payload), &draft); err != nil {
		return Draft{}, fmt.Errorf("unmarshal draft: %w", err)
	}
	return draft, nil
}

// Delete removes the draft once a durable save has landed.
func (s *DraftStore) Delete(ctx context.Context, contractID string) error {
	if err := s.client.Del(ctx, s.key(contractID)).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *DraftStore) Close() error {
	return s.client.Close()
}

// Ping checks if Redis is reachable.
func (s *DraftStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

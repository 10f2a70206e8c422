package rediscache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"biohub/internal/core/domain"
	"biohub/internal/core/port"
)

const (
	brandByCodeKey   = "brand:sc:"
	brandByHandleKey = "brand:h:"
	campaignKey      = "campaign:sc:"
)

// Store is a read-through cache in front of an EntityStore. Brand and
// campaign lookups are cached as JSON under a TTL; misses and Redis errors
// fall through to the wrapped store, so the cache can never make a working
// link fail. Deactivating an entity takes effect within one TTL.
// Only positive results are cached.
type Store struct {
	next   port.EntityStore
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewStore(next port.EntityStore, client *redis.Client, ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{next: next, client: client, ttl: ttl, logger: logger}
}

func (s *Store) FindBrandByShortCode(ctx context.Context, code string) (*domain.Brand, error) {
	key := brandByCodeKey + code
	var cached domain.Brand
	if s.get(ctx, key, &cached) {
		return &cached, nil
	}
	brand, err := s.next.FindBrandByShortCode(ctx, code)
	if err != nil || brand == nil {
		return brand, err
	}
	s.set(ctx, key, brand)
	return brand, nil
}

func (s *Store) FindBrandByHandle(ctx context.Context, handle string) (*domain.Brand, error) {
	key := brandByHandleKey + handle
	var cached domain.Brand
	if s.get(ctx, key, &cached) {
		return &cached, nil
	}
	brand, err := s.next.FindBrandByHandle(ctx, handle)
	if err != nil || brand == nil {
		return brand, err
	}
	s.set(ctx, key, brand)
	return brand, nil
}

func (s *Store) FindCampaignByShortCode(ctx context.Context, code string) (*domain.Campaign, error) {
	key := campaignKey + code
	var cached domain.Campaign
	if s.get(ctx, key, &cached) {
		return &cached, nil
	}
	campaign, err := s.next.FindCampaignByShortCode(ctx, code)
	if err != nil || campaign == nil {
		return campaign, err
	}
	s.set(ctx, key, campaign)
	return campaign, nil
}

// InsertClickEvent is a passthrough; click rows are never cached.
func (s *Store) InsertClickEvent(ctx context.Context, ev domain.ClickEvent) error {
	return s.next.InsertClickEvent(ctx, ev)
}

func (s *Store) get(ctx context.Context, key string, dst any) bool {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Debug("cache read failed", slog.String("key", key), slog.Any("error", err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn("cache entry corrupt", slog.String("key", key), slog.Any("error", err))
		return false
	}
	return true
}

func (s *Store) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		s.logger.Debug("cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

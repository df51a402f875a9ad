package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"logistica_cotizaciones/internal/domain/entities"
	"logistica_cotizaciones/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

// SessionRedisCache is a read-through cache in front of another session
// store. Redis failures degrade to the underlying store.
type SessionRedisCache struct {
	next   interfaces.ISessionRepository
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

var _ interfaces.ISessionRepository = (*SessionRedisCache)(nil)

func NewSessionRedisCache(next interfaces.ISessionRepository, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *SessionRedisCache {
	return &SessionRedisCache{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

func (c *SessionRedisCache) Create(ctx context.Context, s entities.Session) error {
	if err := c.next.Create(ctx, s); err != nil {
		return err
	}
	c.store(ctx, s)
	return nil
}

func (c *SessionRedisCache) GetByToken(ctx context.Context, token string) (entities.Session, error) {
	raw, err := c.rdb.Get(ctx, sessionKeyPrefix+token).Bytes()
	switch {
	case err == nil:
		var s entities.Session
		if jsonErr := json.Unmarshal(raw, &s); jsonErr == nil && s.Token == token {
			return s, nil
		}
		c.logger.Warn("session cache corrupt entry", zap.String("key", sessionKeyPrefix+token))
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("session cache read failed", zap.Error(err))
	}

	s, err := c.next.GetByToken(ctx, token)
	if err != nil {
		return entities.Session{}, err
	}
	if s.Token != "" {
		c.store(ctx, s)
	}
	return s, nil
}

func (c *SessionRedisCache) Delete(ctx context.Context, token string) error {
	if err := c.next.Delete(ctx, token); err != nil {
		return err
	}
	if err := c.rdb.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		c.logger.Warn("session cache evict failed", zap.Error(err))
	}
	return nil
}

// DeleteByUserID revokes in the store and evicts every revoked token.
func (c *SessionRedisCache) DeleteByUserID(ctx context.Context, userID int64) ([]string, error) {
	tokens, err := c.next.DeleteByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return tokens, nil
	}
	keys := make([]string, len(tokens))
	for i, t := range tokens {
		keys[i] = sessionKeyPrefix + t
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("session cache evict failed", zap.Int64("user_id", userID), zap.Error(err))
	}
	return tokens, nil
}

// store caches s for the configured TTL, never past the session expiry.
func (c *SessionRedisCache) store(ctx context.Context, s entities.Session) {
	ttl := c.ttl
	if remaining := s.ExpiresAt.Sub(c.now()); remaining < ttl {
		ttl = remaining
	}
	if ttl <= 0 {
		return
	}
	raw, err := json.Marshal(s)
	if err != nil {
		c.logger.Warn("session cache encode failed", zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, sessionKeyPrefix+s.Token, raw, ttl).Err(); err != nil {
		c.logger.Warn("session cache write failed", zap.Error(err))
	}
}

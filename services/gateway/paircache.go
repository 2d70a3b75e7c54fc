package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/footmanhq/dispatch/internal/pkg/constants"
	"github.com/footmanhq/dispatch/internal/pkg/database"
	"github.com/footmanhq/dispatch/internal/pkg/logger"
	"github.com/footmanhq/dispatch/internal/pkg/models"
)

// pairCacheTTL bounds how long a resolved pairing outlives the request that
// produced it. Terminal transitions invalidate eagerly; the TTL is the
// backstop for crashes in between.
const pairCacheTTL = 30 * time.Minute

// PairResolver resolves a request's customer/partner pairing.
type PairResolver interface {
	ResolvePair(ctx context.Context, requestID string) (*models.RequestPair, error)
}

// PairCache is a read-through Redis cache in front of the persistence
// collaborator's pair lookup. Every fan-out targets the pair, so the lookup
// sits on the hot path of each inbound event.
type PairCache struct {
	redis    *database.RedisClient
	resolver PairResolver
}

// NewPairCache creates the pair cache.
func NewPairCache(redis *database.RedisClient, resolver PairResolver) *PairCache {
	return &PairCache{
		redis:    redis,
		resolver: resolver,
	}
}

// Resolve returns the pairing for a request, from cache when warm.
func (c *PairCache) Resolve(ctx context.Context, requestID string) (*models.RequestPair, error) {
	key := fmt.Sprintf(constants.KeyRequestPair, requestID)

	fields, err := c.redis.HGetAll(ctx, key)
	if err == nil && len(fields) > 0 {
		return &models.RequestPair{
			RequestID:  requestID,
			CustomerID: fields[constants.FieldCustomerID],
			PartnerID:  fields[constants.FieldPartnerID],
		}, nil
	}

	pair, err := c.resolver.ResolvePair(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := c.redis.HSet(ctx, key, map[string]interface{}{
		constants.FieldCustomerID: pair.CustomerID,
		constants.FieldPartnerID:  pair.PartnerID,
	}); err != nil {
		logger.Warn("failed to cache request pair",
			logger.String("request_id", requestID),
			logger.Err(err))
	} else if err := c.redis.Client.Expire(ctx, key, pairCacheTTL).Err(); err != nil {
		logger.Warn("failed to set pair cache ttl",
			logger.String("request_id", requestID),
			logger.Err(err))
	}

	return pair, nil
}

// Invalidate drops the cached pairing, typically on a terminal transition.
func (c *PairCache) Invalidate(ctx context.Context, requestID string) {
	key := fmt.Sprintf(constants.KeyRequestPair, requestID)
	if err := c.redis.Delete(ctx, key); err != nil {
		logger.Warn("failed to invalidate pair cache",
			logger.String("request_id", requestID),
			logger.Err(err))
	}
}

package gateway

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/footmanhq/dispatch/internal/pkg/constants"
	"github.com/footmanhq/dispatch/internal/pkg/database"
	"github.com/footmanhq/dispatch/internal/pkg/models"
	"github.com/footmanhq/dispatch/services/request/mocks"
)

func newTestRedis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return &database.RedisClient{Client: client}, mr
}

func TestPairCache_ReadThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	rc, mr := newTestRedis(t)
	uc := mocks.NewMockRequestUC(ctrl)
	cache := NewPairCache(rc, uc)

	pair := &models.RequestPair{RequestID: "req-1", CustomerID: "cust-1", PartnerID: "partner-1"}

	// The resolver is consulted exactly once; the second lookup is served
	// from Redis.
	uc.EXPECT().ResolvePair(gomock.Any(), "req-1").Return(pair, nil).Times(1)

	got, err := cache.Resolve(context.Background(), "req-1")
	assert.NoError(t, err)
	assert.Equal(t, "cust-1", got.CustomerID)
	assert.Equal(t, "partner-1", got.PartnerID)

	got, err = cache.Resolve(context.Background(), "req-1")
	assert.NoError(t, err)
	assert.Equal(t, "partner-1", got.PartnerID)

	assert.True(t, mr.Exists(fmt.Sprintf(constants.KeyRequestPair, "req-1")))
}

func TestPairCache_ResolverError(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	rc, _ := newTestRedis(t)
	uc := mocks.NewMockRequestUC(ctrl)
	cache := NewPairCache(rc, uc)

	uc.EXPECT().ResolvePair(gomock.Any(), "missing").Return(nil, assert.AnError)

	_, err := cache.Resolve(context.Background(), "missing")
	assert.Error(t, err)
}

func TestPairCache_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	rc, mr := newTestRedis(t)
	uc := mocks.NewMockRequestUC(ctrl)
	cache := NewPairCache(rc, uc)

	pair := &models.RequestPair{RequestID: "req-1", CustomerID: "cust-1", PartnerID: "partner-1"}
	uc.EXPECT().ResolvePair(gomock.Any(), "req-1").Return(pair, nil).Times(2)

	_, err := cache.Resolve(context.Background(), "req-1")
	assert.NoError(t, err)

	cache.Invalidate(context.Background(), "req-1")
	assert.False(t, mr.Exists(fmt.Sprintf(constants.KeyRequestPair, "req-1")))

	// Cold again: the resolver is hit a second time.
	_, err = cache.Resolve(context.Background(), "req-1")
	assert.NoError(t, err)
}

//go:build integration
// +build integration

package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RedisLimiterTestSuite struct {
	suite.Suite
	pool     *dockertest.Pool
	resource *dockertest.Resource
	client   *redis.Client
	limiter  *RedisLimiter
}

func (s *RedisLimiterTestSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	require.NoError(s.T(), err, "could not connect to docker")
	s.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(s.T(), err, "could not start redis")
	s.resource = resource

	url := fmt.Sprintf("redis://127.0.0.1:%s/0", resource.GetPort("6379/tcp"))
	pool.MaxWait = time.Minute
	require.NoError(s.T(), pool.Retry(func() error {
		client, err := NewRedisClient(url)
		if err != nil {
			return err
		}
		s.client = client
		return nil
	}))

	s.limiter = NewRedisLimiter(s.client)
}

func (s *RedisLimiterTestSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.pool != nil && s.resource != nil {
		_ = s.pool.Purge(s.resource)
	}
}

func (s *RedisLimiterTestSuite) SetupTest() {
	require.NoError(s.T(), s.client.FlushDB(context.Background()).Err())
}

func (s *RedisLimiterTestSuite) TestAllow_BlocksAfterLimit() {
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := s.limiter.Allow(ctx, "auth:10.0.0.1", 3, time.Minute)
		require.NoError(s.T(), err)
		assert.True(s.T(), allowed, "hit %d", i+1)
	}

	allowed, err := s.limiter.Allow(ctx, "auth:10.0.0.1", 3, time.Minute)
	require.NoError(s.T(), err)
	assert.False(s.T(), allowed)

	// other clients keep their own budget
	allowed, err = s.limiter.Allow(ctx, "auth:10.0.0.2", 3, time.Minute)
	require.NoError(s.T(), err)
	assert.True(s.T(), allowed)
}

func (s *RedisLimiterTestSuite) TestAllow_WindowExpires() {
	ctx := context.Background()

	allowed, err := s.limiter.Allow(ctx, "global:10.0.0.3", 1, time.Second)
	require.NoError(s.T(), err)
	assert.True(s.T(), allowed)

	ttl, err := s.client.TTL(ctx, keyPrefix+"global:10.0.0.3").Result()
	require.NoError(s.T(), err)
	assert.Greater(s.T(), ttl, time.Duration(0))

	allowed, err = s.limiter.Allow(ctx, "global:10.0.0.3", 1, time.Second)
	require.NoError(s.T(), err)
	assert.False(s.T(), allowed)

	time.Sleep(1500 * time.Millisecond)

	allowed, err = s.limiter.Allow(ctx, "global:10.0.0.3", 1, time.Second)
	require.NoError(s.T(), err)
	assert.True(s.T(), allowed)
}

func (s *RedisLimiterTestSuite) TestRemainingAndReset() {
	ctx := context.Background()

	remaining, err := s.limiter.Remaining(ctx, "auth:10.0.0.4", 5)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(5), remaining)

	_, err = s.limiter.Allow(ctx, "auth:10.0.0.4", 5, time.Minute)
	require.NoError(s.T(), err)

	remaining, err = s.limiter.Remaining(ctx, "auth:10.0.0.4", 5)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(4), remaining)

	require.NoError(s.T(), s.limiter.Reset(ctx, "auth:10.0.0.4"))
	remaining, err = s.limiter.Remaining(ctx, "auth:10.0.0.4", 5)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(5), remaining)
}

func TestRedisLimiterTestSuite(t *testing.T) {
	suite.Run(t, new(RedisLimiterTestSuite))
}

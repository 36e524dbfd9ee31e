package prediction

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultViewTTL = 5 * time.Minute

	KeySummary         = "predictions:view:summary"
	KeyTurnover        = "predictions:view:turnover"
	KeyPerformance     = "predictions:view:performance"
	KeyAbsenteeism     = "predictions:view:absenteeism"
	KeyRecommendations = "predictions:view:recommendations"
)

var viewKeys = []string{KeySummary, KeyTurnover, KeyPerformance, KeyAbsenteeism, KeyRecommendations}

// ViewCache holds rendered dashboard views. A nil client disables storage
// but concurrent loads are still collapsed.
type ViewCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	sf     singleflight.Group
	logger *zap.Logger
}

// NewViewCache keeps views for ttl, or five minutes when ttl is not positive.
func NewViewCache(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) *ViewCache {
	l := zap.L().Named("prediction.cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("prediction.cache")
	}
	if ttl <= 0 {
		ttl = defaultViewTTL
	}
	return &ViewCache{rdb: rdb, ttl: ttl, logger: l}
}

// Invalidate drops every cached view. Called after the feed writes.
func (c *ViewCache) Invalidate(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	if err := c.rdb.Del(ctx, viewKeys...).Err(); err != nil {
		c.logger.Error("failed to invalidate prediction views", zap.Error(err))
		return err
	}
	return nil
}

func loadView[T any](ctx context.Context, c *ViewCache, key string, load func(context.Context) (T, error)) (T, error) {
	if c == nil {
		return load(ctx)
	}

	if c.rdb != nil {
		cached, err := c.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var view T
			if err := json.Unmarshal(cached, &view); err == nil {
				return view, nil
			}
			c.logger.Warn("discarding unreadable cached view", zap.String("key", key))
		} else if !errors.Is(err, redis.Nil) {
			c.logger.Warn("prediction cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		view, err := load(ctx)
		if err != nil {
			return nil, err
		}

		if c.rdb != nil {
			if data, err := json.Marshal(view); err == nil {
				if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
					c.logger.Warn("prediction cache write failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return view, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

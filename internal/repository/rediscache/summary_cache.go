// Package rediscache кеш read-моделей поверх Redis. Кеш строго best-effort:
// любая ошибка Redis трактуется как промах и логируется на уровне debug.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/qvest/internal/domain"
)

const summaryKeyPrefix = "referral:summary:"

type SummaryCache struct {
	rdb *redis.Client
	l   *logrus.Entry
}

func New(rdb *redis.Client, l *logrus.Logger) *SummaryCache {
	return &SummaryCache{
		rdb: rdb,
		l:   l.WithField("component", "rediscache"),
	}
}

// Connect открывает соединение с Redis и проверяет его пингом.
func Connect(ctx context.Context, addr string, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return rdb, nil
}

func (c *SummaryCache) GetSummary(ctx context.Context, identity string) ([]domain.ReferralLevel, bool) {
	payload, getErr := c.rdb.Get(ctx, summaryKeyPrefix+identity).Bytes()
	if getErr != nil {
		if !errors.Is(getErr, redis.Nil) {
			c.l.WithError(getErr).Debug("summary cache get")
		}
		return nil, false
	}

	var levels []domain.ReferralLevel
	if jsonErr := json.Unmarshal(payload, &levels); jsonErr != nil {
		c.l.WithError(jsonErr).Debug("summary cache unmarshal")
		return nil, false
	}
	return levels, true
}

func (c *SummaryCache) SetSummary(
	ctx context.Context,
	identity string,
	levels []domain.ReferralLevel,
	ttl time.Duration,
) {
	payload, jsonErr := json.Marshal(levels)
	if jsonErr != nil {
		c.l.WithError(jsonErr).Debug("summary cache marshal")
		return
	}
	if setErr := c.rdb.Set(ctx, summaryKeyPrefix+identity, payload, ttl).Err(); setErr != nil {
		c.l.WithError(setErr).Debug("summary cache set")
	}
}

package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"serraria-backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// Cache opcional das métricas. O recálculo continua sendo a fonte da
// verdade; o cache só evita bater no banco a cada refresh do dashboard.
var rdb *redis.Client

const (
	metricsCacheKey = "dashboard:metrics"
	metricsCacheTTL = 30 * time.Second
)

// EnableCache: liga o cache quando REDIS_ADDR está definido. Se o redis não
// responder, segue sem cache.
func EnableCache(addr string) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.L.Warn().Err(err).Str("addr", addr).Msg("redis indisponível, cache do dashboard desligado")
		return
	}
	rdb = client
	logger.L.Info().Str("addr", addr).Msg("cache do dashboard ligado")
}

func cachedMetrics(ctx context.Context) *Metrics {
	if rdb == nil {
		return nil
	}
	raw, err := rdb.Get(ctx, metricsCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var m Metrics
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return &m
}

func storeMetrics(ctx context.Context, m *Metrics) {
	if rdb == nil {
		return
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return
	}
	if err := rdb.Set(ctx, metricsCacheKey, raw, metricsCacheTTL).Err(); err != nil {
		logger.L.Warn().Err(err).Msg("não foi possível gravar as métricas no cache")
	}
}

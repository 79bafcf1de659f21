package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/home-affordability/internal/metrics"
	"github.com/Dan9191/home-affordability/internal/models"
)

const (
	keyRateCacheKey = "key_rate"
	refreshTimeout  = 30 * time.Second
)

// KeyRateFetcher retrieves the current reference rate
type KeyRateFetcher interface {
	GetKeyRate(ctx context.Context) (models.KeyRate, error)
}

// RateService caches the reference rate and refreshes it on a schedule
type RateService struct {
	fetcher KeyRateFetcher
	cache   *expirable.LRU[string, models.KeyRate]
	cron    *cron.Cron
	log     *logrus.Logger
}

// NewRateService creates a rate service whose cached rate expires after ttl
func NewRateService(fetcher KeyRateFetcher, ttl time.Duration, log *logrus.Logger) *RateService {
	return &RateService{
		fetcher: fetcher,
		cache:   expirable.NewLRU[string, models.KeyRate](1, nil, ttl),
		log:     log,
	}
}

// KeyRate returns the cached rate, fetching it when absent or expired
func (r *RateService) KeyRate(ctx context.Context) (models.KeyRate, error) {
	if rate, ok := r.cache.Get(keyRateCacheKey); ok {
		return rate, nil
	}
	return r.Refresh(ctx)
}

// Refresh fetches the rate and replaces the cached value
func (r *RateService) Refresh(ctx context.Context) (models.KeyRate, error) {
	rate, err := r.fetcher.GetKeyRate(ctx)
	if err != nil {
		metrics.KeyRateFetchErrors.Inc()
		return models.KeyRate{}, fmt.Errorf("failed to fetch key rate: %w", err)
	}
	r.cache.Add(keyRateCacheKey, rate)
	return rate, nil
}

// Start schedules background refreshes using a cron spec such as
// "@every 1h" or "0 9 * * *".
func (r *RateService) Start(schedule string) error {
	c := cron.New(cron.WithLogger(cron.PrintfLogger(r.log)))
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if _, err := r.Refresh(ctx); err != nil {
			r.log.Warnf("Scheduled key rate refresh failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}

	r.cron = c
	c.Start()
	r.log.Infof("Key rate refresh scheduled: %s", schedule)
	return nil
}

// Stop halts the scheduler and waits for a running refresh to finish
func (r *RateService) Stop() {
	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
}

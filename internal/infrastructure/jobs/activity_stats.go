package jobs

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"founder-net.backend/pkg/logger"
	"founder-net.backend/pkg/redis"
)

// activityCounter counts rows created since a point in time.
type activityCounter interface {
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

var (
	micropostsCreatedGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "activity_microposts_created",
		Help: "Micro-posts created during the last collection window.",
	})
	followsCreatedGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "activity_follows_created",
		Help: "Follow edges created during the last collection window.",
	})
)

const leaderLockKey = "activity_stats:leader"

// ActivityStatsJob samples write activity once per interval and exposes it
// as gauges. When redis is configured, a SetNX lock keeps one instance
// collecting per window.
type ActivityStatsJob struct {
	microposts activityCounter
	follows    activityCounter
	interval   time.Duration
	stop       chan struct{}
}

func NewActivityStatsJob(microposts, follows activityCounter) *ActivityStatsJob {
	return &ActivityStatsJob{
		microposts: microposts,
		follows:    follows,
		interval:   15 * time.Minute,
		stop:       make(chan struct{}),
	}
}

func (j *ActivityStatsJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting activity stats job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "activity stats job stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "activity stats job stopped")
			return
		case <-ticker.C:
			j.collect(ctx)
		}
	}
}

func (j *ActivityStatsJob) Stop() {
	close(j.stop)
}

func (j *ActivityStatsJob) collect(ctx context.Context) {
	if redis.GetClient() != nil {
		ok, err := redis.SetNX(ctx, leaderLockKey, "1", j.interval)
		if err != nil {
			logger.Warn(ctx, "activity stats leader lock", zap.Error(err))
			return
		}
		if !ok {
			// Another instance holds the window
			return
		}
	}

	since := time.Now().Add(-j.interval)

	if n, err := j.microposts.CountCreatedSince(ctx, since); err != nil {
		logger.Warn(ctx, "counting new microposts", zap.Error(err))
	} else {
		micropostsCreatedGauge.Set(float64(n))
		logger.Info(ctx, "activity window", zap.Int64("microposts", n))
	}

	if n, err := j.follows.CountCreatedSince(ctx, since); err != nil {
		logger.Warn(ctx, "counting new follows", zap.Error(err))
	} else {
		followsCreatedGauge.Set(float64(n))
		logger.Info(ctx, "activity window", zap.Int64("follows", n))
	}
}

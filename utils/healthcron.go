package utils

import (
	"context"
	"errors"
	"time"

	"resortpay/config"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

const healthPingTimeout = 5 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

// CheckStorageHealth hace un ping y reporta el resultado. No reconecta.
func CheckStorageHealth(ctx context.Context, p Pinger, report func(up bool)) bool {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	err := p.Ping(ctx)
	up := err == nil
	if !up {
		log := LoggerFrom(ctx).Named("health")
		if errors.Is(err, config.ErrNoDatabase) {
			// modo degradado: el gauge ya lo refleja
			log.Debug("MongoDB not configured", zap.Error(err))
		} else {
			log.Warn("MongoDB ping failed", zap.Error(err))
		}
	}
	if report != nil {
		report(up)
	}
	return up
}

// StartHealthCheck programa CheckStorageHealth cada interval. El llamador
// detiene el scheduler con Stop() al apagar.
func StartHealthCheck(p Pinger, interval time.Duration, report func(up bool)) (*gocron.Scheduler, error) {
	s := gocron.NewScheduler(time.UTC)
	_, err := s.Every(interval).Do(func() {
		CheckStorageHealth(context.Background(), p, report)
	})
	if err != nil {
		return nil, err
	}
	s.StartAsync()
	return s, nil
}

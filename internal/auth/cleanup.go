package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
)

const DefaultCleanupSchedule = "@every 8h"

// sessionCleaner is what the cleanup schedule runs.
type sessionCleaner interface {
	ScanAndClean(ctx context.Context)
}

// StartSessionCleanup runs ScanAndClean on the given cron schedule until the
// returned stop func is called.
func StartSessionCleanup(cleaner sessionCleaner, schedule string, timeout time.Duration) (stop func(), err error) {
	c := cron.New()
	if err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		cleaner.ScanAndClean(ctx)
	}); err != nil {
		return nil, fmt.Errorf("schedule session cleanup [%s]: %w", schedule, err)
	}

	c.Start()
	log.Infof("session cleanup scheduled: %s", schedule)

	return c.Stop, nil
}

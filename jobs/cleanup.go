package jobs

import (
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"matka/database"
	"matka/task"
)

// retentionDays controls how long soft-cancelled bets are kept before the
// purge job removes them for good.
func retentionDays() int {
	if raw := os.Getenv("BET_RETENTION_DAYS"); raw != "" {
		if days, err := strconv.Atoi(raw); err == nil && days > 0 {
			return days
		}
	}
	return 30
}

// StartCleanupScheduler runs the maintenance tasks on a fixed interval:
// expired sessions every 10 minutes, cancelled-bet purge once an hour.
func StartCleanupScheduler() {
	go func() {
		sessions := time.NewTicker(10 * time.Minute)
		purge := time.NewTicker(1 * time.Hour)
		defer sessions.Stop()
		defer purge.Stop()

		retention := time.Duration(retentionDays()) * 24 * time.Hour
		log.WithField("retention_days", retentionDays()).Info("cleanup scheduler started")

		for {
			select {
			case <-sessions.C:
				task.DeleteExpiredSessions(database.DB)
			case <-purge.C:
				task.PurgeCancelledBets(database.DB, retention)
			}
		}
	}()
}

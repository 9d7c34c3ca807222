package task

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"matka/models"
)

// DeleteExpiredSessions removes sessions past their expiry.
func DeleteExpiredSessions(db *gorm.DB) {
	res := db.Unscoped().
		Where("expires_at < ?", time.Now()).
		Delete(&models.Session{})
	if res.Error != nil {
		log.WithError(res.Error).Error("failed to delete expired sessions")
		return
	}
	if res.RowsAffected > 0 {
		log.WithField("count", res.RowsAffected).Info("deleted expired sessions")
	}
}

// PurgeCancelledBets hard-deletes soft-cancelled bets once their retention
// window has passed.
func PurgeCancelledBets(db *gorm.DB, retention time.Duration) {
	cutoff := time.Now().Add(-retention)
	res := db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&models.Bet{})
	if res.Error != nil {
		log.WithError(res.Error).Error("failed to purge cancelled bets")
		return
	}
	if res.RowsAffected > 0 {
		log.WithField("count", res.RowsAffected).Info("purged cancelled bets")
	}
}

package task

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"matka/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "task.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Session{}, &models.Bet{}))
	return db
}

func TestDeleteExpiredSessions(t *testing.T) {
	db := newTestDB(t)

	user := models.User{Username: "player1", Email: "p1@example.com", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	live := models.Session{UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	expired := models.Session{UserID: user.ID, ExpiresAt: time.Now().Add(-time.Hour)}
	require.NoError(t, db.Create(&live).Error)
	require.NoError(t, db.Create(&expired).Error)

	DeleteExpiredSessions(db)

	var n int64
	require.NoError(t, db.Model(&models.Session{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	var kept models.Session
	require.NoError(t, db.First(&kept).Error)
	assert.Equal(t, live.ID, kept.ID)
}

func TestPurgeCancelledBets(t *testing.T) {
	db := newTestDB(t)

	user := models.User{Username: "player1", Email: "p1@example.com", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	old := models.Bet{UserID: user.ID, Number: "123", Bazar: models.BazarKalyanOpen}
	recent := models.Bet{UserID: user.ID, Number: "456", Bazar: models.BazarKalyanOpen}
	live := models.Bet{UserID: user.ID, Number: "678", Bazar: models.BazarKalyanOpen}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&recent).Error)
	require.NoError(t, db.Create(&live).Error)

	// Soft-cancel two of them, one past retention and one inside it.
	require.NoError(t, db.Model(&models.Bet{}).Where("id = ?", old.ID).
		Update("deleted_at", time.Now().Add(-72*time.Hour)).Error)
	require.NoError(t, db.Model(&models.Bet{}).Where("id = ?", recent.ID).
		Update("deleted_at", time.Now().Add(-time.Hour)).Error)

	PurgeCancelledBets(db, 48*time.Hour)

	var n int64
	require.NoError(t, db.Unscoped().Model(&models.Bet{}).Count(&n).Error)
	assert.EqualValues(t, 2, n)

	require.NoError(t, db.Unscoped().Model(&models.Bet{}).Where("id = ?", old.ID).Count(&n).Error)
	assert.Zero(t, n)
}

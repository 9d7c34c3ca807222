package database

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"matka/models"
)

var DB *gorm.DB

func Connect() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, pass, name, port, sslmode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	DB = db
	log.WithFields(log.Fields{"host": host, "dbname": name}).Info("connected to database")

	autoMigrateEnv := os.Getenv("DB_AUTO_MIGRATE")
	autoMigrate, err := strconv.ParseBool(autoMigrateEnv)
	if err != nil && autoMigrateEnv != "" {
		log.WithField("value", autoMigrateEnv).Warn("invalid DB_AUTO_MIGRATE value")
	}

	if autoMigrate {
		log.Info("starting auto-migration")

		if err := DB.AutoMigrate(
			&models.User{},
			&models.Session{},
			&models.BulkBetAction{},
			&models.Bet{},
		); err != nil {
			log.WithError(err).Fatal("failed to auto-migrate database")
		}

		log.Info("auto-migration completed")
	}
}

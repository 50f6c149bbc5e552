package utils

import (
	"log"
	"pmti/database"
	"pmti/models"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[BATCH-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// deactivateExpiredBatches flips is_active off for batches whose end date has
// passed. Students of an expired batch keep their accounts; only the batch
// stops appearing in registration and announcement targeting.
func deactivateExpiredBatches() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&models.Batch{}).
		Where("end_date < ? AND is_active = ? AND is_deleted = ?", now, true, false).
		Update("is_active", false)
	if result.Error != nil {
		logScheduler("Error deactivating expired batches: " + result.Error.Error())
		return
	}

	if result.RowsAffected > 0 {
		logScheduler("Deactivated expired batches")
	}
}

// InitializeBatchScheduler starts the nightly batch expiry job.
func InitializeBatchScheduler() *cron.Cron {
	c := cron.New()

	// Midnight, every day
	c.AddFunc("0 0 * * *", func() {
		deactivateExpiredBatches()
	})

	c.Start()
	logScheduler("Batch expiry scheduler started - runs daily at midnight")
	return c
}

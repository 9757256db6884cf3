package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/salonops/salon-scheduler/internal/config"
	"github.com/salonops/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Provider{},
		&models.Service{},
		&models.ProviderService{},
		&models.WorkingWindow{},
		&models.Booking{},
		&models.BookingEvent{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := ensureOverlapGuard(db); err != nil {
		log.Fatalf("failed to install booking overlap guard: %v", err)
	}

	return db
}

// ensureOverlapGuard installs the exclusion constraint that is the last
// line of defense against double booking. AutoMigrate cannot express it,
// and the process must not come up without it.
func ensureOverlapGuard(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return fmt.Errorf("enable btree_gist: %w", err)
	}

	var count int64
	if err := db.Raw(
		`SELECT count(*) FROM pg_constraint WHERE conname = ?`,
		"bookings_no_overlap",
	).Scan(&count).Error; err != nil {
		return fmt.Errorf("check bookings_no_overlap: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := db.Exec(`
        ALTER TABLE bookings
        ADD CONSTRAINT bookings_no_overlap
        EXCLUDE USING gist (
            provider_id WITH =,
            tstzrange(start_time, end_time) WITH &&
        )
        WHERE (status IN ('pending', 'confirmed', 'completed'))
    `).Error; err != nil {
		return fmt.Errorf("add bookings_no_overlap: %w", err)
	}
	return nil
}

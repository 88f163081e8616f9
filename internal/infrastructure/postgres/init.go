package postgres

import (
	"log"

	"github.com/kiamaikocoders/wya-payment-service/internal/config"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.WYAConfig) *gorm.DB {
	dsn := cfg.PaymentsDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	if err := AutoMigrate(db); err != nil {
		log.Fatalf("failed to migrate db: %v\n", err.Error())
	}

	return db
}

// AutoMigrate is separate from MustInitDB so repository tests can run it
// against an in-memory database.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.EventModel{},
		&models.TicketModel{},
		&models.TransactionModel{},
		&models.NotificationModel{},
	)
}

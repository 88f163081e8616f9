package setup

import (
	"fmt"

	"github.com/kiamaikocoders/wya-payment-service/internal/config"
	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/daraja"
	publisher "github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/kafka"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/metrics"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/migrate"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config           *config.WYAConfig
	DB               *gorm.DB
	Gateway          *daraja.Client
	PaymentPublisher *publisher.KafkaPublisher
	PaymentMetrics   *metrics.PaymentMetrics
	Repositories     *Repositories
}

type Repositories struct {
	TransactionRepo  domain.TransactionRepository
	TicketRepo       domain.TicketRepository
	EventRepo        domain.EventRepository
	NotificationRepo domain.NotificationRepository
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)

	if err := migrate.RunMigrations(db, cfg.PaymentsDB.MigrationsPath); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	paymentPublisher := publisher.NewKafkaPublisher(
		[]string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
	)

	repos := &Repositories{
		TransactionRepo:  repository.NewDefaultTransactionRepository(db),
		TicketRepo:       repository.NewDefaultTicketRepository(db),
		EventRepo:        repository.NewDefaultEventRepository(db),
		NotificationRepo: repository.NewDefaultNotificationRepository(db),
	}

	return &Dependencies{
		Config:           cfg,
		DB:               db,
		Gateway:          daraja.NewClient(cfg.Daraja),
		PaymentPublisher: paymentPublisher,
		PaymentMetrics:   metrics.NewPaymentMetrics(),
		Repositories:     repos,
	}, nil
}

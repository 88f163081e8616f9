package payment

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	publisher "github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/kafka"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/metrics"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Prometheus collectors register globally, so the whole package shares
// one instance.
var testMetrics = metrics.NewPaymentMetrics()

type stubGateway struct {
	response *domain.STKPushResponse
	err      error
	lastReq  *domain.STKPushRequest
}

func (g *stubGateway) RequestSTKPush(_ context.Context, req *domain.STKPushRequest) (*domain.STKPushResponse, error) {
	g.lastReq = req
	if g.err != nil {
		return nil, g.err
	}
	return g.response, nil
}

type stubPublisher struct {
	mu     sync.Mutex
	events []publisher.PaymentEvent
}

func (p *stubPublisher) PublishPayment(event publisher.PaymentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *stubPublisher) published() []publisher.PaymentEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publisher.PaymentEvent(nil), p.events...)
}

type testEnv struct {
	db        *gorm.DB
	uc        *DefaultPaymentUsecase
	gateway   *stubGateway
	publisher *stubPublisher

	transactionRepo  domain.TransactionRepository
	ticketRepo       domain.TicketRepository
	eventRepo        domain.EventRepository
	notificationRepo domain.NotificationRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(db))

	gateway := &stubGateway{
		response: &domain.STKPushResponse{
			MerchantRequestID:   "mr_1",
			CheckoutRequestID:   "ws_1",
			ResponseDescription: "Success. Request accepted for processing",
			CustomerMessage:     "Success. Request accepted for processing",
		},
	}
	pub := &stubPublisher{}

	transactionRepo := repository.NewDefaultTransactionRepository(db)
	ticketRepo := repository.NewDefaultTicketRepository(db)
	eventRepo := repository.NewDefaultEventRepository(db)
	notificationRepo := repository.NewDefaultNotificationRepository(db)

	uc := NewDefaultPaymentUsecase(
		transactionRepo,
		ticketRepo,
		eventRepo,
		notificationRepo,
		gateway,
		pub,
		testMetrics,
		5*time.Minute,
	)

	return &testEnv{
		db:               db,
		uc:               uc,
		gateway:          gateway,
		publisher:        pub,
		transactionRepo:  transactionRepo,
		ticketRepo:       ticketRepo,
		eventRepo:        eventRepo,
		notificationRepo: notificationRepo,
	}
}

// seedTicket creates the event + pending ticket a payment settles against.
func (env *testEnv) seedTicket(t *testing.T, referenceCode, userID string) *domain.Ticket {
	t.Helper()

	event := &domain.Event{
		ID:          uuid.NewString(),
		Title:       "Blankets & Wine",
		Venue:       "Ngong Racecourse",
		TicketPrice: 500,
		StartsAt:    time.Now().Add(72 * time.Hour),
		CreatedAt:   time.Now(),
	}
	require.NoError(t, env.eventRepo.CreateEvent(event))

	ticket := &domain.Ticket{
		ID:            uuid.NewString(),
		UserID:        userID,
		EventID:       event.ID,
		ReferenceCode: referenceCode,
		Status:        domain.TicketStatusPending,
		Amount:        event.TicketPrice,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	require.NoError(t, env.ticketRepo.CreateTicket(ticket))

	return ticket
}

func (env *testEnv) seedPendingTransaction(t *testing.T, checkoutRequestID, referenceCode string) *domain.Transaction {
	t.Helper()

	transaction := &domain.Transaction{
		ID:                uuid.NewString(),
		MerchantRequestID: "mr-" + checkoutRequestID,
		CheckoutRequestID: checkoutRequestID,
		PhoneNumber:       "254712345678",
		Amount:            500,
		ReferenceCode:     referenceCode,
		Status:            domain.TxStatusPending,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	require.NoError(t, env.transactionRepo.CreateTransaction(transaction))

	return transaction
}

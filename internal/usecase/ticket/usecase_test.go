package ticket

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres/repository"
	ticketdto "github.com/kiamaikocoders/wya-payment-service/internal/usecase/dto/ticket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestUsecase(t *testing.T) (*DefaultTicketUsecase, domain.EventRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(db))

	eventRepo := repository.NewDefaultEventRepository(db)
	uc, err := NewDefaultTicketUsecase(repository.NewDefaultTicketRepository(db), eventRepo)
	require.NoError(t, err)

	return uc, eventRepo
}

func seedEvent(t *testing.T, eventRepo domain.EventRepository) *domain.Event {
	t.Helper()
	event := &domain.Event{
		ID:          uuid.NewString(),
		Title:       "Sol Fest",
		Venue:       "Uhuru Gardens",
		TicketPrice: 2500,
		StartsAt:    time.Now().Add(24 * time.Hour),
		CreatedAt:   time.Now(),
	}
	require.NoError(t, eventRepo.CreateEvent(event))
	return event
}

func TestCreateTicket(t *testing.T) {
	uc, eventRepo := newTestUsecase(t)
	event := seedEvent(t, eventRepo)

	output, err := uc.CreateTicket(&ticketdto.CreateTicketInput{
		UserID:  "user-1",
		EventID: event.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", output.Ticket.UserID)
	assert.Equal(t, event.ID, output.Ticket.EventID)
	assert.Equal(t, domain.TicketStatusPending, output.Ticket.Status)
	assert.Equal(t, 2500.0, output.Ticket.Amount)
	assert.Equal(t, "Sol Fest", output.EventTitle)

	require.True(t, strings.HasPrefix(output.Ticket.ReferenceCode, "TKT-"))
	code := strings.TrimPrefix(output.Ticket.ReferenceCode, "TKT-")
	assert.Len(t, code, 8)
	for _, r := range code {
		assert.Contains(t, referenceAlphabet, string(r))
	}
}

func TestCreateTicketUnknownEvent(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.CreateTicket(&ticketdto.CreateTicketInput{
		UserID:  "user-1",
		EventID: uuid.NewString(),
	})
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestCreateTicketReferenceCodesAreUnique(t *testing.T) {
	uc, eventRepo := newTestUsecase(t)
	event := seedEvent(t, eventRepo)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		output, err := uc.CreateTicket(&ticketdto.CreateTicketInput{
			UserID:  "user-1",
			EventID: event.ID,
		})
		require.NoError(t, err)
		require.False(t, seen[output.Ticket.ReferenceCode])
		seen[output.Ticket.ReferenceCode] = true
	}
}

func TestGetTicketByReferenceCode(t *testing.T) {
	uc, eventRepo := newTestUsecase(t)
	event := seedEvent(t, eventRepo)

	created, err := uc.CreateTicket(&ticketdto.CreateTicketInput{
		UserID:  "user-1",
		EventID: event.ID,
	})
	require.NoError(t, err)

	output, err := uc.GetTicketByReferenceCode(created.Ticket.ReferenceCode)
	require.NoError(t, err)
	assert.Equal(t, created.Ticket.ID, output.Ticket.ID)
	assert.Equal(t, "Sol Fest", output.EventTitle)

	_, err = uc.GetTicketByReferenceCode("TKT-MISSING1")
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

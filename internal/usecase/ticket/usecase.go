package ticket

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	ticketdto "github.com/kiamaikocoders/wya-payment-service/internal/usecase/dto/ticket"
)

type TicketUsecase interface {
	CreateTicket(input *ticketdto.CreateTicketInput) (*ticketdto.TicketOutput, error)
	GetTicketByReferenceCode(referenceCode string) (*ticketdto.TicketOutput, error)
}

// Reference codes are short, uppercase and unambiguous so support staff
// can read them back over the phone.
const referenceAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

type DefaultTicketUsecase struct {
	TicketRepo domain.TicketRepository
	EventRepo  domain.EventRepository
	newRefCode func() string
}

func NewDefaultTicketUsecase(ticketRepo domain.TicketRepository, eventRepo domain.EventRepository) (*DefaultTicketUsecase, error) {
	gen, err := nanoid.CustomASCII(referenceAlphabet, 8)
	if err != nil {
		return nil, fmt.Errorf("failed to init reference code generator: %w", err)
	}

	return &DefaultTicketUsecase{
		TicketRepo: ticketRepo,
		EventRepo:  eventRepo,
		newRefCode: gen,
	}, nil
}

// CreateTicket reserves a pending ticket and hands back the reference code
// the client passes to the payment initiator.
func (uc *DefaultTicketUsecase) CreateTicket(input *ticketdto.CreateTicketInput) (*ticketdto.TicketOutput, error) {
	event, err := uc.EventRepo.GetEventByID(input.EventID)
	if err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		ID:            uuid.NewString(),
		UserID:        input.UserID,
		EventID:       event.ID,
		ReferenceCode: "TKT-" + uc.newRefCode(),
		Status:        domain.TicketStatusPending,
		Amount:        event.TicketPrice,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := uc.TicketRepo.CreateTicket(ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	return &ticketdto.TicketOutput{Ticket: *ticket, EventTitle: event.Title}, nil
}

func (uc *DefaultTicketUsecase) GetTicketByReferenceCode(referenceCode string) (*ticketdto.TicketOutput, error) {
	ticket, err := uc.TicketRepo.GetTicketByReferenceCode(referenceCode)
	if err != nil {
		return nil, err
	}

	output := &ticketdto.TicketOutput{Ticket: *ticket}
	if event, err := uc.EventRepo.GetEventByID(ticket.EventID); err == nil {
		output.EventTitle = event.Title
	}

	return output, nil
}

package repository

import (
	"errors"

	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres/mappers"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTicketRepository struct {
	DB *gorm.DB
}

func NewDefaultTicketRepository(db *gorm.DB) *DefaultTicketRepository {
	return &DefaultTicketRepository{DB: db}
}

func (r *DefaultTicketRepository) CreateTicket(ticket *domain.Ticket) error {
	ticketModel := mappers.ToGORMTicket(ticket)
	if err := r.DB.Create(ticketModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateReference
		}
		return err
	}
	return nil
}

func (r *DefaultTicketRepository) GetTicketByReferenceCode(referenceCode string) (*domain.Ticket, error) {
	var ticketModel models.TicketModel
	if err := r.DB.First(&ticketModel, "reference_code = ?", referenceCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, err
	}

	return mappers.ToDomainTicket(&ticketModel), nil
}

package mappers

import (
	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres/models"
)

func ToDomainTicket(model *models.TicketModel) *domain.Ticket {
	return &domain.Ticket{
		ID: model.ID,
		UserID: model.UserID,
		EventID: model.EventID,
		ReferenceCode: model.ReferenceCode,
		Status: model.Status,
		PaymentID: model.PaymentID,
		Amount: model.Amount,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMTicket(ticket *domain.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID: ticket.ID,
		UserID: ticket.UserID,
		EventID: ticket.EventID,
		ReferenceCode: ticket.ReferenceCode,
		Status: ticket.Status,
		PaymentID: ticket.PaymentID,
		Amount: ticket.Amount,
		CreatedAt: ticket.CreatedAt,
		UpdatedAt: ticket.UpdatedAt,
	}
}

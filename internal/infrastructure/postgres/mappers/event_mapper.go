package mappers

import (
	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres/models"
)

func ToDomainEvent(model *models.EventModel) *domain.Event {
	return &domain.Event{
		ID: model.ID,
		Title: model.Title,
		Venue: model.Venue,
		TicketPrice: model.TicketPrice,
		StartsAt: model.StartsAt,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMEvent(event *domain.Event) *models.EventModel {
	return &models.EventModel{
		ID: event.ID,
		Title: event.Title,
		Venue: event.Venue,
		TicketPrice: event.TicketPrice,
		StartsAt: event.StartsAt,
		CreatedAt: event.CreatedAt,
	}
}

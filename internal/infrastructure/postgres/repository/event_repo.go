package repository

import (
	"errors"

	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres/mappers"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultEventRepository struct {
	DB *gorm.DB
}

func NewDefaultEventRepository(db *gorm.DB) *DefaultEventRepository {
	return &DefaultEventRepository{DB: db}
}

func (r *DefaultEventRepository) CreateEvent(event *domain.Event) error {
	eventModel := mappers.ToGORMEvent(event)
	return r.DB.Create(eventModel).Error
}

func (r *DefaultEventRepository) GetEventByID(eventID string) (*domain.Event, error) {
	var eventModel models.EventModel
	if err := r.DB.First(&eventModel, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}

	return mappers.ToDomainEvent(&eventModel), nil
}

package models

import (
	"time"

	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
)

type TicketModel struct {
	ID 			  string 			  `gorm:"primaryKey;type:uuid"`
	UserID 		  string 			  `gorm:"index;not null"`
	EventID 	  string 			  `gorm:"type:uuid;not null"`
	Event 		  EventModel 		  `gorm:"foreignKey:EventID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	ReferenceCode string 			  `gorm:"uniqueIndex;not null"`
	Status 		  domain.TicketStatus `gorm:"index;not null"`
	PaymentID 	  string
	Amount 		  float64
	CreatedAt 	  time.Time
	UpdatedAt 	  time.Time
}

func (TicketModel) TableName() string {
	return "tickets"
}

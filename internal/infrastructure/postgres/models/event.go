package models

import "time"

type EventModel struct {
	ID 			string 	  `gorm:"primaryKey;type:uuid"`
	Title 		string 	  `gorm:"not null"`
	Venue 		string
	TicketPrice float64
	StartsAt 	time.Time
	CreatedAt 	time.Time
}

func (EventModel) TableName() string {
	return "events"
}

package models

import "time"

type NotificationModel struct {
	ID 		  string 	`gorm:"primaryKey;type:uuid"`
	UserID 	  string 	`gorm:"index;not null"`
	Title 	  string 	`gorm:"not null"`
	Body 	  string
	Read 	  bool 		`gorm:"default:false"`
	CreatedAt time.Time `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

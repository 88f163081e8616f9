package models

import (
	"time"

	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
)

type TransactionModel struct {
	ID 				   string 					`gorm:"primaryKey;type:uuid"`
	MerchantRequestID  string 					`gorm:"index"`
	CheckoutRequestID  string 					`gorm:"uniqueIndex;not null"`
	PhoneNumber 	   string 					`gorm:"not null"`
	Amount 			   float64 					`gorm:"not null"`
	ReferenceCode 	   string 					`gorm:"uniqueIndex;not null"`
	Description 	   string
	Status 			   domain.TransactionStatus `gorm:"index:idx_status_created;not null"`
	MpesaReceiptNumber string
	TransactionDate    string
	FailureReason 	   string
	RawCallback 	   string 					`gorm:"type:text"`
	CreatedAt 		   time.Time				`gorm:"index:idx_status_created"`
	UpdatedAt 		   time.Time
}

func (TransactionModel) TableName() string {
	return "mpesa_transactions"
}

package mappers

import (
	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID: model.ID,
		MerchantRequestID: model.MerchantRequestID,
		CheckoutRequestID: model.CheckoutRequestID,
		PhoneNumber: model.PhoneNumber,
		Amount: model.Amount,
		ReferenceCode: model.ReferenceCode,
		Description: model.Description,
		Status: model.Status,
		MpesaReceiptNumber: model.MpesaReceiptNumber,
		TransactionDate: model.TransactionDate,
		FailureReason: model.FailureReason,
		RawCallback: model.RawCallback,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMTransaction(tx *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID: tx.ID,
		MerchantRequestID: tx.MerchantRequestID,
		CheckoutRequestID: tx.CheckoutRequestID,
		PhoneNumber: tx.PhoneNumber,
		Amount: tx.Amount,
		ReferenceCode: tx.ReferenceCode,
		Description: tx.Description,
		Status: tx.Status,
		MpesaReceiptNumber: tx.MpesaReceiptNumber,
		TransactionDate: tx.TransactionDate,
		FailureReason: tx.FailureReason,
		RawCallback: tx.RawCallback,
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}
}

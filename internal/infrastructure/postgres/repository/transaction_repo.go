package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres/mappers"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) CreateTransaction(tx *domain.Transaction) error {
	txModel := mappers.ToGORMTransaction(tx)
	if err := r.DB.Create(txModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateReference
		}
		return err
	}
	return nil
}

func (r *DefaultTransactionRepository) GetTransactionByCheckoutRequestID(checkoutRequestID string) (*domain.Transaction, error) {
	var txModel models.TransactionModel
	if err := r.DB.First(&txModel, "checkout_request_id = ?", checkoutRequestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}

	return mappers.ToDomainTransaction(&txModel), nil
}

// FinalizePayment applies the terminal status, the ticket update and the
// notification insert in a single database transaction. The status update
// is guarded on status=pending, so a duplicate callback affects zero rows
// and the whole operation becomes a no-op.
func (r *DefaultTransactionRepository) FinalizePayment(f *domain.PaymentFinalization) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var txModel models.TransactionModel
		if err := tx.First(&txModel, "checkout_request_id = ?", f.CheckoutRequestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTransactionNotFound
			}
			return err
		}

		result := tx.Model(&models.TransactionModel{}).
			Where("checkout_request_id = ? AND status = ?", f.CheckoutRequestID, domain.TxStatusPending).
			Updates(map[string]interface{}{
				"status":               f.NewStatus,
				"mpesa_receipt_number": f.MpesaReceiptNumber,
				"transaction_date":     f.TransactionDate,
				"failure_reason":       f.FailureReason,
				"raw_callback":         f.RawCallback,
				"updated_at":           time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update transaction: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrAlreadyProcessed
		}

		if err := tx.Model(&models.TicketModel{}).
			Where("reference_code = ?", txModel.ReferenceCode).
			Updates(map[string]interface{}{
				"status":     f.TicketStatus,
				"payment_id": f.PaymentID,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}

		if f.Notification != nil {
			if err := tx.Create(mappers.ToGORMNotification(f.Notification)).Error; err != nil {
				return fmt.Errorf("failed to create notification: %w", err)
			}
		}

		return nil
	})
}

func (r *DefaultTransactionRepository) FindStalePending(before time.Time) ([]*domain.Transaction, error) {
	var txModels []models.TransactionModel
	if err := r.DB.
		Where("status = ? AND created_at < ?", domain.TxStatusPending, before).
		Find(&txModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, len(txModels))
	for i, txModel := range txModels {
		transactions[i] = mappers.ToDomainTransaction(&txModel)
	}

	return transactions, nil
}

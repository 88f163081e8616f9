package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiamaikocoders/wya-payment-service/internal/delivery/httpapi/dto/request"
	"github.com/kiamaikocoders/wya-payment-service/internal/delivery/httpapi/dto/response"
	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	paymentdto "github.com/kiamaikocoders/wya-payment-service/internal/usecase/dto/payment"
	"github.com/kiamaikocoders/wya-payment-service/internal/usecase/payment"
)

type PaymentHandler struct {
	paymentUsecase payment.PaymentUsecase
}

func NewPaymentHandler(paymentUsecase payment.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

// InitiatePayment handles POST /api/v1/payments/initiate.
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var req request.InitiatePayment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Payment{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	if req.PhoneNumber == "" || req.Amount <= 0 || req.ReferenceCode == "" {
		c.JSON(http.StatusBadRequest, response.Payment{
			Success: false,
			Message: "phoneNumber, amount and referenceCode are required",
		})
		return
	}

	output, err := h.paymentUsecase.InitiatePayment(c.Request.Context(), &paymentdto.InitiatePaymentInput{
		PhoneNumber:   req.PhoneNumber,
		Amount:        req.Amount,
		ReferenceCode: req.ReferenceCode,
		Description:   req.Description,
	})
	if err != nil {
		if errors.Is(err, payment.ErrInvalidPhoneNumber) || errors.Is(err, payment.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, response.Payment{Success: false, Message: err.Error()})
			return
		}
		if errors.Is(err, domain.ErrDuplicateReference) {
			c.JSON(http.StatusConflict, response.Payment{
				Success: false,
				Message: "a payment for this reference code is already in progress",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, response.Payment{
			Success: false,
			Message: "failed to initiate payment: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Payment{
		Success: true,
		Message: "STK push sent. Enter your M-Pesa PIN to complete the payment.",
		Data: &response.PaymentData{
			CheckoutRequestID: output.CheckoutRequestID,
			MerchantRequestID: output.MerchantRequestID,
			CustomerMessage:   output.CustomerMessage,
		},
	})
}

// MpesaCallback handles POST /api/v1/payments/mpesa/callback, invoked by
// the gateway, not by our clients.
func (h *PaymentHandler) MpesaCallback(c *gin.Context) {
	var envelope paymentdto.STKCallbackEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		c.JSON(http.StatusBadRequest, response.Callback{
			Success: false,
			Message: "invalid callback payload",
		})
		return
	}

	if err := h.paymentUsecase.HandleCallback(c.Request.Context(), &envelope.Body.StkCallback); err != nil {
		c.JSON(http.StatusInternalServerError, response.Callback{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Callback{Success: true})
}

// GetPaymentStatus handles GET /api/v1/payments/:checkoutRequestId. The
// SPA polls it after initiating while the user enters their PIN.
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	checkoutRequestID := c.Param("checkoutRequestId")

	output, err := h.paymentUsecase.GetPaymentStatus(checkoutRequestID)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	transaction := output.Transaction
	c.JSON(http.StatusOK, response.PaymentStatus{
		CheckoutRequestID: transaction.CheckoutRequestID,
		ReferenceCode:     transaction.ReferenceCode,
		Status:            string(transaction.Status),
		Amount:            transaction.Amount,
		ReceiptNumber:     transaction.MpesaReceiptNumber,
		FailureReason:     transaction.FailureReason,
	})
}

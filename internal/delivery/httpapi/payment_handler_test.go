package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kiamaikocoders/wya-payment-service/internal/delivery/httpapi/dto/response"
	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	paymentdto "github.com/kiamaikocoders/wya-payment-service/internal/usecase/dto/payment"
	"github.com/kiamaikocoders/wya-payment-service/internal/usecase/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakePaymentUsecase struct {
	initiateOutput *paymentdto.InitiatePaymentOutput
	initiateErr    error
	lastInput      *paymentdto.InitiatePaymentInput

	callbackErr  error
	lastCallback *paymentdto.STKCallback

	statusOutput *paymentdto.PaymentStatusOutput
	statusErr    error
}

func (f *fakePaymentUsecase) InitiatePayment(_ context.Context, input *paymentdto.InitiatePaymentInput) (*paymentdto.InitiatePaymentOutput, error) {
	f.lastInput = input
	return f.initiateOutput, f.initiateErr
}

func (f *fakePaymentUsecase) HandleCallback(_ context.Context, callback *paymentdto.STKCallback) error {
	f.lastCallback = callback
	return f.callbackErr
}

func (f *fakePaymentUsecase) GetPaymentStatus(string) (*paymentdto.PaymentStatusOutput, error) {
	return f.statusOutput, f.statusErr
}

func (f *fakePaymentUsecase) ExpireStalePayments(context.Context) error { return nil }

func newPaymentRouter(uc payment.PaymentUsecase) *gin.Engine {
	handler := NewPaymentHandler(uc)
	r := gin.New()
	r.POST("/api/v1/payments/initiate", handler.InitiatePayment)
	r.POST("/api/v1/payments/mpesa/callback", handler.MpesaCallback)
	r.GET("/api/v1/payments/:checkoutRequestId", handler.GetPaymentStatus)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInitiatePaymentEndpoint(t *testing.T) {
	uc := &fakePaymentUsecase{
		initiateOutput: &paymentdto.InitiatePaymentOutput{
			CheckoutRequestID: "ws_1",
			MerchantRequestID: "mr_1",
			CustomerMessage:   "Success. Request accepted for processing",
		},
	}
	r := newPaymentRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/payments/initiate",
		`{"phoneNumber":"0712345678","amount":500,"referenceCode":"TKT-1"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var body response.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotNil(t, body.Data)
	assert.Equal(t, "ws_1", body.Data.CheckoutRequestID)
	assert.Equal(t, "mr_1", body.Data.MerchantRequestID)

	require.NotNil(t, uc.lastInput)
	assert.Equal(t, "0712345678", uc.lastInput.PhoneNumber)
	assert.Equal(t, 500.0, uc.lastInput.Amount)
	assert.Equal(t, "TKT-1", uc.lastInput.ReferenceCode)
}

func TestInitiatePaymentEndpointValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"phoneNumber":`},
		{"missing phone", `{"amount":500,"referenceCode":"TKT-1"}`},
		{"zero amount", `{"phoneNumber":"0712345678","amount":0,"referenceCode":"TKT-1"}`},
		{"missing reference", `{"phoneNumber":"0712345678","amount":500}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakePaymentUsecase{}
			r := newPaymentRouter(uc)
			w := doJSON(t, r, http.MethodPost, "/api/v1/payments/initiate", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, uc.lastInput)
		})
	}
}

func TestInitiatePaymentEndpointInvalidPhone(t *testing.T) {
	uc := &fakePaymentUsecase{initiateErr: payment.ErrInvalidPhoneNumber}
	r := newPaymentRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/payments/initiate",
		`{"phoneNumber":"12345","amount":500,"referenceCode":"TKT-1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInitiatePaymentEndpointDuplicateReference(t *testing.T) {
	uc := &fakePaymentUsecase{
		initiateErr: fmt.Errorf("failed to record pending transaction: %w", domain.ErrDuplicateReference),
	}
	r := newPaymentRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/payments/initiate",
		`{"phoneNumber":"0712345678","amount":500,"referenceCode":"TKT-1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	var body response.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
}

func TestInitiatePaymentEndpointUpstreamFailure(t *testing.T) {
	uc := &fakePaymentUsecase{initiateErr: errors.New("stk push failed")}
	r := newPaymentRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/payments/initiate",
		`{"phoneNumber":"0712345678","amount":500,"referenceCode":"TKT-1"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body response.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
}

func TestMpesaCallbackEndpoint(t *testing.T) {
	uc := &fakePaymentUsecase{}
	r := newPaymentRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/payments/mpesa/callback", `{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "29115-34620561-1",
				"CheckoutRequestID": "ws_CO_191220191020363925",
				"ResultCode": 0,
				"ResultDesc": "The service request is processed successfully.",
				"CallbackMetadata": {
					"Item": [
						{"Name": "Amount", "Value": 500.00},
						{"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"},
						{"Name": "TransactionDate", "Value": 20260830121530},
						{"Name": "PhoneNumber", "Value": 254712345678}
					]
				}
			}
		}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.lastCallback)
	assert.Equal(t, "ws_CO_191220191020363925", uc.lastCallback.CheckoutRequestID)
	assert.Equal(t, 0, uc.lastCallback.ResultCode)
	assert.Len(t, uc.lastCallback.CallbackMetadata.Item, 4)
}

func TestMpesaCallbackEndpointBadPayload(t *testing.T) {
	uc := &fakePaymentUsecase{}
	r := newPaymentRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/payments/mpesa/callback", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.lastCallback)
}

func TestMpesaCallbackEndpointUsecaseError(t *testing.T) {
	uc := &fakePaymentUsecase{callbackErr: errors.New("db down")}
	r := newPaymentRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/payments/mpesa/callback",
		`{"Body":{"stkCallback":{"CheckoutRequestID":"ws_1","ResultCode":0}}}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetPaymentStatusEndpoint(t *testing.T) {
	uc := &fakePaymentUsecase{
		statusOutput: &paymentdto.PaymentStatusOutput{
			Transaction: domain.Transaction{
				CheckoutRequestID:  "ws_1",
				ReferenceCode:      "TKT-1",
				Status:             domain.TxStatusCompleted,
				Amount:             500,
				MpesaReceiptNumber: "NLJ7RT61SV",
			},
		},
	}
	r := newPaymentRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/ws_1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body response.PaymentStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ws_1", body.CheckoutRequestID)
	assert.Equal(t, "completed", body.Status)
	assert.Equal(t, "NLJ7RT61SV", body.ReceiptNumber)
}

func TestGetPaymentStatusEndpointNotFound(t *testing.T) {
	uc := &fakePaymentUsecase{statusErr: domain.ErrTransactionNotFound}
	r := newPaymentRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/ws_missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

package daraja

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/kiamaikocoders/wya-payment-service/internal/config"
	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
)

const timestampLayout = "20060102150405"

// Daraja validates the password against Nairobi wall time, regardless of
// where this process runs.
var nairobi = mustNairobi()

func mustNairobi() *time.Location {
	loc, err := time.LoadLocation("Africa/Nairobi")
	if err != nil {
		return time.FixedZone("EAT", 3*60*60)
	}
	return loc
}

// Client talks to the Safaricom Daraja API: a short-lived OAuth token is
// fetched per request, then the STK push is submitted with it.
type Client struct {
	cfg        config.Daraja
	httpClient *http.Client
	now        func() time.Time
}

func NewClient(cfg config.Daraja) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

type errorResponse struct {
	RequestID    string `json:"requestId"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

func (c *Client) fetchToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/oauth/v1/generate?grant_type=client_credentials", c.cfg.BaseURL), nil)
	if err != nil {
		return "", err
	}
	auth := base64.StdEncoding.EncodeToString([]byte(c.cfg.ConsumerKey + ":" + c.cfg.ConsumerSecret))
	req.Header.Set("Authorization", "Basic "+auth)

	response, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("oauth request failed: %w", err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return "", fmt.Errorf("oauth returned status %d: %s", response.StatusCode, string(responseBodyBytes))
	}

	var token tokenResponse
	if err := json.Unmarshal(responseBodyBytes, &token); err != nil {
		return "", err
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("oauth response missing access_token")
	}
	return token.AccessToken, nil
}

// stkPassword derives the Lipa Na M-Pesa password for the given instant:
// base64(shortcode + passkey + timestamp), with the timestamp rendered in
// Nairobi time.
func stkPassword(shortcode, passkey string, t time.Time) (password, timestamp string) {
	timestamp = t.In(nairobi).Format(timestampLayout)
	password = base64.StdEncoding.EncodeToString([]byte(shortcode + passkey + timestamp))
	return password, timestamp
}

func (c *Client) RequestSTKPush(ctx context.Context, req *domain.STKPushRequest) (*domain.STKPushResponse, error) {
	token, err := c.fetchToken(ctx)
	if err != nil {
		return nil, err
	}

	password, timestamp := stkPassword(c.cfg.Shortcode, c.cfg.Passkey, c.now())

	requestBodyBytes, err := json.Marshal(stkPushRequest{
		BusinessShortCode: c.cfg.Shortcode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            int64(math.Round(req.Amount)),
		PartyA:            req.PhoneNumber,
		PartyB:            c.cfg.Shortcode,
		PhoneNumber:       req.PhoneNumber,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  req.AccountReference,
		TransactionDesc:   req.Description,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/mpesa/stkpush/v1/processrequest", c.cfg.BaseURL), bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	response, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("stk push request failed: %w", err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		var gatewayErr errorResponse
		if err := json.Unmarshal(responseBodyBytes, &gatewayErr); err == nil && gatewayErr.ErrorMessage != "" {
			return nil, fmt.Errorf("%w: %s (%s)", domain.ErrSTKPushFailed, gatewayErr.ErrorMessage, gatewayErr.ErrorCode)
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrSTKPushFailed, response.StatusCode)
	}

	var pushResponse stkPushResponse
	if err := json.Unmarshal(responseBodyBytes, &pushResponse); err != nil {
		return nil, err
	}
	if pushResponse.ResponseCode != "0" {
		return nil, fmt.Errorf("%w: %s", domain.ErrSTKPushFailed, pushResponse.ResponseDescription)
	}

	return &domain.STKPushResponse{
		MerchantRequestID:   pushResponse.MerchantRequestID,
		CheckoutRequestID:   pushResponse.CheckoutRequestID,
		ResponseDescription: pushResponse.ResponseDescription,
		CustomerMessage:     pushResponse.CustomerMessage,
	}, nil
}

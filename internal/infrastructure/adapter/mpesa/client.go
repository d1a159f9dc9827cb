package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	errs "github.com/scorepulse/scorepulse/internal/domain/error"
	coreport "github.com/scorepulse/scorepulse/internal/domain/port/core"
	"github.com/scorepulse/scorepulse/internal/domain/port/gateway"
)

const (
	tokenPath = "/oauth/v1/generate?grant_type=client_credentials"
	pushPath  = "/mpesa/stkpush/v1/processrequest"

	// timestampLayout is the gateway's required password timestamp format
	timestampLayout = "20060102150405"

	// tokenExpiryMargin is subtracted from the advertised token lifetime so
	// a token is refreshed before it actually lapses mid-request
	tokenExpiryMargin = 30 * time.Second
)

// Config holds the gateway credentials and endpoints
type Config struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	Passkey        string
	CallbackURL    string
	Timeout        time.Duration
}

// Client talks to the M-Pesa Daraja API. It caches the OAuth access token
// across requests and refreshes it when the gateway reports it expired.
type Client struct {
	config       Config
	httpClient   *http.Client
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a gateway client with a bounded request timeout
func NewClient(config Config, timeProvider coreport.TimeProvider, logger coreport.Logger) *Client {
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &Client{
		config:       config,
		httpClient:   &http.Client{Timeout: config.Timeout},
		timeProvider: timeProvider,
		logger:       logger,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"` // seconds, sent as a string
}

type pushRequest struct {
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

type pushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

type errorResponse struct {
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// RequestPush sends an STK push to the subscriber's phone. On success the
// returned CheckoutRequestID is the key the caller must persist before
// acknowledging the payment attempt.
func (c *Client) RequestPush(ctx context.Context, req gateway.PushRequest) (*gateway.PushResponse, error) {
	phone, err := NormalizePhone(req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	resp, err := c.doPush(ctx, req, phone, false)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// doPush performs one push attempt, re-authenticating once on a 401
func (c *Client) doPush(ctx context.Context, req gateway.PushRequest, phone string, retried bool) (*gateway.PushResponse, error) {
	token, err := c.accessTokenLocked(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := c.timeProvider.Now().Format(timestampLayout)
	password := base64.StdEncoding.EncodeToString(
		[]byte(c.config.ShortCode + c.config.Passkey + timestamp))

	body := pushRequest{
		BusinessShortCode: c.config.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            req.Amount,
		PartyA:            phone,
		PartyB:            c.config.ShortCode,
		PhoneNumber:       phone,
		CallBackURL:       c.config.CallbackURL,
		AccountReference:  fmt.Sprintf("SP-%d", req.AccountID),
		TransactionDesc:   "ScorePulse PRO upgrade",
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, errs.NewGatewayError("push", "encoding request body", errs.ErrGatewayUnreachable)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+pushPath, &buf)
	if err != nil {
		return nil, errs.NewGatewayError("push", err.Error(), errs.ErrGatewayUnreachable)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Gateway push request failed", map[string]any{
			"account_id": req.AccountID,
			"error":      err.Error(),
		})
		return nil, errs.NewGatewayError("push", err.Error(), errs.ErrGatewayUnreachable)
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode == http.StatusUnauthorized && !retried {
		c.logger.Warn("Gateway rejected the access token, re-authenticating", map[string]any{
			"account_id": req.AccountID,
		})
		c.invalidateToken()
		return c.doPush(ctx, req, phone, true)
	}

	if httpResp.StatusCode != http.StatusOK {
		var gatewayErr errorResponse
		reason := httpResp.Status
		if decodeErr := json.NewDecoder(httpResp.Body).Decode(&gatewayErr); decodeErr == nil && gatewayErr.ErrorMessage != "" {
			reason = gatewayErr.ErrorMessage
		}
		c.logger.Warn("Gateway declined push request", map[string]any{
			"account_id": req.AccountID,
			"status":     httpResp.StatusCode,
			"reason":     reason,
		})
		return nil, errs.NewGatewayError("push", reason, errs.ErrGatewayRejected)
	}

	var pushResp pushResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&pushResp); err != nil {
		return nil, errs.NewGatewayError("push", "decoding response body", errs.ErrGatewayUnreachable)
	}

	if pushResp.ResponseCode != "0" {
		c.logger.Warn("Gateway returned a non-zero response code", map[string]any{
			"account_id":    req.AccountID,
			"response_code": pushResp.ResponseCode,
			"description":   pushResp.ResponseDescription,
		})
		return nil, errs.NewGatewayError("push", pushResp.ResponseDescription, errs.ErrGatewayRejected)
	}

	if pushResp.CheckoutRequestID == "" {
		return nil, errs.NewGatewayError("push", "gateway accepted without a checkout request id", errs.ErrGatewayRejected)
	}

	c.logger.Info("Push accepted by gateway", map[string]any{
		"account_id":          req.AccountID,
		"checkout_request_id": pushResp.CheckoutRequestID,
	})

	return &gateway.PushResponse{
		CheckoutRequestID: pushResp.CheckoutRequestID,
		CustomerMessage:   pushResp.CustomerMessage,
	}, nil
}

// accessTokenLocked returns the cached token or fetches a fresh one
func (c *Client) accessTokenLocked(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && c.timeProvider.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+tokenPath, nil)
	if err != nil {
		return "", errs.NewGatewayError("auth", err.Error(), errs.ErrGatewayAuth)
	}
	httpReq.SetBasicAuth(c.config.ConsumerKey, c.config.ConsumerSecret)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Gateway token request failed", map[string]any{
			"error": err.Error(),
		})
		return "", errs.NewGatewayError("auth", err.Error(), errs.ErrGatewayUnreachable)
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode != http.StatusOK {
		return "", errs.NewGatewayError("auth", httpResp.Status, errs.ErrGatewayAuth)
	}

	var tokenResp tokenResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&tokenResp); err != nil {
		return "", errs.NewGatewayError("auth", "decoding token response", errs.ErrGatewayAuth)
	}
	if tokenResp.AccessToken == "" {
		return "", errs.NewGatewayError("auth", "empty access token", errs.ErrGatewayAuth)
	}

	// expires_in arrives as a string of seconds
	lifetime := 3600
	if secs, convErr := strconv.Atoi(tokenResp.ExpiresIn); convErr == nil && secs > 0 {
		lifetime = secs
	}

	c.accessToken = tokenResp.AccessToken
	c.tokenExpiry = c.timeProvider.Now().Add(time.Duration(lifetime)*time.Second - tokenExpiryMargin)

	c.logger.Debug("Gateway access token refreshed", map[string]any{
		"expires_in_s": lifetime,
	})
	return c.accessToken, nil
}

// invalidateToken drops the cached token so the next call re-authenticates
func (c *Client) invalidateToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = ""
	c.tokenExpiry = time.Time{}
}

// NormalizePhone converts a subscriber number to the 2547XXXXXXXX form the
// gateway requires. Accepted inputs: 07XXXXXXXX, +2547XXXXXXXX, 2547XXXXXXXX.
func NormalizePhone(phone string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		if r == ' ' || r == '-' || r == '+' {
			return -1
		}
		return r
	}, strings.TrimSpace(phone))

	switch {
	case strings.HasPrefix(cleaned, "0") && len(cleaned) == 10:
		cleaned = "254" + cleaned[1:]
	case strings.HasPrefix(cleaned, "254") && len(cleaned) == 12:
		// already normalized
	default:
		return "", errs.ErrInvalidPhoneNumber
	}

	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", errs.ErrInvalidPhoneNumber
		}
	}
	return cleaned, nil
}

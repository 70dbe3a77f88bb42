package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/messaging"
	"github.com/sony/gobreaker"
)

var _ messaging.MessageSender = (*Client)(nil)

// maxErrorBody bounds how much of a failed response is kept for logging
const maxErrorBody = 512

// Config holds the Cloud API credentials and client behaviour
type Config struct {
	BaseURL          string
	APIVersion       string
	APIToken         string
	PhoneNumberID    string
	Timeout          time.Duration
	FailureThreshold uint32        // consecutive failures that open the breaker
	OpenTimeout      time.Duration // how long the breaker stays open
}

// Client sends text messages through the WhatsApp Cloud API.
// It never retries; an open breaker fails calls immediately.
type Client struct {
	config     Config
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     coreport.Logger
}

type textBody struct {
	Body string `json:"body"`
}

type sendRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	RecipientType    string   `json:"recipient_type"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// NewClient creates a Cloud API client
func NewClient(config Config, logger coreport.Logger) *Client {
	c := &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     logger,
	}

	threshold := config.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "whatsapp-cloud-api",
		MaxRequests: 1,
		Timeout:     config.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Messaging circuit breaker changed state", map[string]any{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	})

	return c
}

// Configured reports whether credentials for sending are present
func (c *Client) Configured() bool {
	return c.config.APIToken != "" && c.config.PhoneNumberID != ""
}

func (c *Client) endpoint() string {
	return fmt.Sprintf("%s/%s/%s/messages",
		strings.TrimRight(c.config.BaseURL, "/"), c.config.APIVersion, c.config.PhoneNumberID)
}

// SendText posts a text message to the recipient. Every failure wraps ErrReplyDispatch.
func (c *Client) SendText(ctx context.Context, to, body string) error {
	if !c.Configured() {
		return fmt.Errorf("%w: messaging credentials are not configured", errs.ErrReplyDispatch)
	}

	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.send(ctx, to, body)
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: messaging API unavailable: %s", errs.ErrReplyDispatch, err.Error())
	}
	return err
}

func (c *Client) send(ctx context.Context, to, body string) error {
	payload, err := json.Marshal(sendRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             textBody{Body: body},
	})
	if err != nil {
		return fmt.Errorf("%w: encoding request: %s", errs.ErrReplyDispatch, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: building request: %s", errs.ErrReplyDispatch, err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrReplyDispatch, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: messaging API returned %d: %s",
			errs.ErrReplyDispatch, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var decoded sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("%w: malformed response: %s", errs.ErrReplyDispatch, err.Error())
	}

	messageID := ""
	if len(decoded.Messages) > 0 {
		messageID = decoded.Messages[0].ID
	}
	c.logger.Debug("Message accepted by messaging API", map[string]any{
		"recipient":  to,
		"message_id": messageID,
	})
	return nil
}

package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:          baseURL,
		APIVersion:       "v17.0",
		APIToken:         "test-token",
		PhoneNumberID:    "1234567890",
		Timeout:          2 * time.Second,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
	}
}

func TestClientSendText(t *testing.T) {
	var received sendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v17.0/1234567890/messages", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messaging_product":"whatsapp","messages":[{"id":"wamid.1"}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL+"/"), logger.NewNoopLogger())

	err := client.SendText(context.Background(), "628123456789", "Transaksi berhasil dicatat!")
	require.NoError(t, err)

	assert.Equal(t, "whatsapp", received.MessagingProduct)
	assert.Equal(t, "individual", received.RecipientType)
	assert.Equal(t, "628123456789", received.To)
	assert.Equal(t, "text", received.Type)
	assert.Equal(t, "Transaksi berhasil dicatat!", received.Text.Body)
}

func TestClientSendTextFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "Non-success status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"message":"Invalid OAuth access token"}}`))
			},
		},
		{
			name: "Malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(testConfig(server.URL), logger.NewNoopLogger())

			err := client.SendText(context.Background(), "628123456789", "hello")
			assert.ErrorIs(t, err, errs.ErrReplyDispatch)
		})
	}
}

func TestClientUnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(testConfig(url), logger.NewNoopLogger())

	err := client.SendText(context.Background(), "628123456789", "hello")
	assert.ErrorIs(t, err, errs.ErrReplyDispatch)
}

func TestClientNotConfigured(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.APIToken = ""
	client := NewClient(cfg, logger.NewNoopLogger())

	assert.False(t, client.Configured())
	err := client.SendText(context.Background(), "628123456789", "hello")
	assert.ErrorIs(t, err, errs.ErrReplyDispatch)
	assert.Zero(t, calls.Load())
}

func TestClientBreakerOpensWithoutRetrying(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewNoopLogger())

	for i := 0; i < 2; i++ {
		assert.ErrorIs(t, client.SendText(context.Background(), "628123456789", "hello"), errs.ErrReplyDispatch)
	}
	assert.Equal(t, int32(2), calls.Load())

	err := client.SendText(context.Background(), "628123456789", "hello")
	assert.ErrorIs(t, err, errs.ErrReplyDispatch)
	assert.Contains(t, err.Error(), "unavailable")
	assert.Equal(t, int32(2), calls.Load(), "open breaker must not reach the API")
}

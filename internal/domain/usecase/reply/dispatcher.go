package reply

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/messaging"
)

// DefaultTimeout bounds a single reply attempt when none is configured
const DefaultTimeout = 10 * time.Second

// Dispatcher sends best-effort replies to chat senders. It never reports
// failures to its caller; they only reach the log.
type Dispatcher struct {
	sender  messaging.MessageSender
	timeout time.Duration
	logger  coreport.Logger
}

// NewDispatcher creates a reply dispatcher around a message sender
func NewDispatcher(sender messaging.MessageSender, timeout time.Duration, logger coreport.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{
		sender:  sender,
		timeout: timeout,
		logger:  logger,
	}
}

// Dispatch sends text to the recipient once. The attempt outlives cancellation
// of ctx so a disconnecting caller does not abort an acknowledgement of a stored entry.
func (d *Dispatcher) Dispatch(ctx context.Context, to, text string) {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	if err := d.sender.SendText(sendCtx, to, text); err != nil {
		d.logger.Warn("Reply dispatch failed", map[string]any{
			"recipient": to,
			"error":     err.Error(),
		})
		return
	}

	d.logger.Debug("Reply dispatched", map[string]any{
		"recipient": to,
	})
}

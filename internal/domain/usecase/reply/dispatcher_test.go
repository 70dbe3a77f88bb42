package reply

import (
	"context"
	"fmt"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/whatsapp-ledger/mocks/port/core"
	messagingmocks "github.com/amirhossein-jamali/whatsapp-ledger/mocks/port/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDispatchSuccess(t *testing.T) {
	mockSender := messagingmocks.NewMockMessageSender(t)
	mockLogger := coremocks.NewMockLogger(t)

	mockSender.EXPECT().SendText(mock.Anything, "628123456789", "Transaksi berhasil dicatat!").Return(nil).Once()
	mockLogger.EXPECT().Debug("Reply dispatched", mock.Anything).Once()

	d := NewDispatcher(mockSender, time.Second, mockLogger)
	d.Dispatch(context.Background(), "628123456789", "Transaksi berhasil dicatat!")
}

func TestDispatchFailureIsLoggedOnly(t *testing.T) {
	mockSender := messagingmocks.NewMockMessageSender(t)
	mockLogger := coremocks.NewMockLogger(t)

	sendErr := fmt.Errorf("%w: status 401", errs.ErrReplyDispatch)
	mockSender.EXPECT().SendText(mock.Anything, "628123456789", "hi").Return(sendErr).Once()
	mockLogger.EXPECT().Warn("Reply dispatch failed", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["recipient"] == "628123456789" && fields["error"] == sendErr.Error()
	})).Once()

	d := NewDispatcher(mockSender, time.Second, mockLogger)
	d.Dispatch(context.Background(), "628123456789", "hi")
}

func TestDispatchSurvivesCallerCancellation(t *testing.T) {
	mockSender := messagingmocks.NewMockMessageSender(t)
	mockLogger := coremocks.NewMockLogger(t)

	mockSender.EXPECT().SendText(mock.Anything, "1", "hi").
		RunAndReturn(func(ctx context.Context, _, _ string) error {
			assert.NoError(t, ctx.Err())
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		}).Once()
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDispatcher(mockSender, 0, mockLogger)
	d.Dispatch(ctx, "1", "hi")
	assert.Equal(t, DefaultTimeout, d.timeout)
}

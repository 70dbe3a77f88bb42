package usecase

import (
	"context"

	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Channel identifies the entry point a command message arrived through
type Channel string

// Supported channels
const (
	ChannelWebhook  Channel = "webhook"
	ChannelManual   Channel = "manual"
	ChannelProvider Channel = "provider"
)

// RepliesToSender reports whether outcomes on this channel are relayed back to the sender
func (c Channel) RepliesToSender() bool {
	return c == ChannelWebhook
}

// PipelineState is a stage of the command pipeline
type PipelineState string

// Pipeline states
const (
	StateReceived  PipelineState = "received"
	StateTokenized PipelineState = "tokenized"
	StateResolved  PipelineState = "resolved"
	StatePersisted PipelineState = "persisted"
	StateReplied   PipelineState = "replied"
	StateDone      PipelineState = "done"
	StateFailed    PipelineState = "failed"
)

// CommandInput is a command message extracted from a transport payload
type CommandInput struct {
	Channel Channel
	Sender  string
	Text    string
}

// CommandOutcome is the structured result of one pipeline run
type CommandOutcome struct {
	State PipelineState
	// FailedAt is the last state reached before failing
	FailedAt      PipelineState
	CategoryToken string
	Magnitude     decimal.Decimal
	Description   string
	User          *entity.User
	Category      *entity.Category
	Transaction   *entity.Transaction
	Audited       bool
	ReplyAttempt  bool
	StatusCode    int
	Err           error
}

// Succeeded reports whether the ledger entry was persisted
func (o *CommandOutcome) Succeeded() bool {
	return o.State == StateDone
}

// CommandUseCase runs command messages through the ledger pipeline
type CommandUseCase interface {
	// Process tokenizes, resolves, persists and (for replying channels) acknowledges a message.
	// The returned outcome is never nil; the error is the failure kind, if any.
	Process(ctx context.Context, input CommandInput) (*CommandOutcome, error)
}

// LedgerQueryUseCase reads message-sourced ledger entries
type LedgerQueryUseCase interface {
	// ListMessageEntries returns the newest entries first
	ListMessageEntries(ctx context.Context, limit int) ([]*entity.LedgerEntry, error)
}

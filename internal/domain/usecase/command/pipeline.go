package command

import (
	"context"
	"net/http"

	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/usecase/reply"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/usecase/resolver"
)

// Pipeline stage names used in errors and logs
const (
	stageTokenize = "tokenize"
	stageResolve  = "resolve"
	stagePersist  = "persist"
)

var _ usecase.CommandUseCase = (*Pipeline)(nil)

// Pipeline turns command messages into ledger entries
type Pipeline struct {
	resolver   *resolver.Resolver
	writer     *ledger.Writer
	dispatcher *reply.Dispatcher
	logger     coreport.Logger
}

// NewPipeline creates a new command pipeline
func NewPipeline(
	entityResolver *resolver.Resolver,
	ledgerWriter *ledger.Writer,
	replyDispatcher *reply.Dispatcher,
	logger coreport.Logger,
) *Pipeline {
	return &Pipeline{
		resolver:   entityResolver,
		writer:     ledgerWriter,
		dispatcher: replyDispatcher,
		logger:     logger,
	}
}

// Process runs one message through tokenize, resolve, persist and reply.
// Once the entry is persisted the outcome is always Done; reply problems are only logged.
func (p *Pipeline) Process(ctx context.Context, input usecase.CommandInput) (*usecase.CommandOutcome, error) {
	outcome := &usecase.CommandOutcome{State: usecase.StateReceived}

	parsed, err := Parse(input.Text)
	if err != nil {
		return p.fail(ctx, input, outcome, stageTokenize, "message could not be tokenized", err)
	}
	outcome.State = usecase.StateTokenized
	outcome.CategoryToken = parsed.CategoryToken
	outcome.Magnitude = parsed.Magnitude
	outcome.Description = parsed.Description

	resolution, err := p.resolver.Resolve(ctx, input.Sender, parsed.CategoryToken)
	if resolution != nil {
		outcome.User = resolution.User
		outcome.Category = resolution.Category
	}
	if err != nil {
		return p.fail(ctx, input, outcome, stageResolve, "sender or category could not be resolved", err)
	}
	outcome.State = usecase.StateResolved

	result, err := p.writer.Write(ctx, ledger.Entry{
		UserID:      resolution.User.ID,
		Category:    resolution.Category,
		Magnitude:   parsed.Magnitude,
		Description: parsed.Description,
		RawMessage:  input.Text,
	})
	if err != nil {
		return p.fail(ctx, input, outcome, stagePersist, "ledger entry could not be stored", err)
	}
	outcome.State = usecase.StatePersisted
	outcome.Transaction = result.Transaction
	outcome.Audited = result.Record != nil

	if input.Channel.RepliesToSender() {
		p.dispatcher.Dispatch(ctx, input.Sender, SuccessReply(resolution.Category.Name, parsed.Magnitude, parsed.Description))
		outcome.ReplyAttempt = true
		outcome.State = usecase.StateReplied
	}

	outcome.State = usecase.StateDone
	outcome.StatusCode = http.StatusOK

	p.logger.Info("Command message recorded", map[string]any{
		"channel":        string(input.Channel),
		"sender":         input.Sender,
		"transaction_id": result.Transaction.ID.String(),
		"category":       resolution.Category.Name,
		"amount":         result.Transaction.Amount.String(),
		"user_created":   resolution.UserCreated,
		"audited":        outcome.Audited,
	})

	return outcome, nil
}

// fail moves the outcome to Failed and, on replying channels, tells the sender why
func (p *Pipeline) fail(
	ctx context.Context,
	input usecase.CommandInput,
	outcome *usecase.CommandOutcome,
	stage, reason string,
	err error,
) (*usecase.CommandOutcome, error) {
	pipelineErr := errs.NewPipelineError(stage, input.Sender, reason, err)

	outcome.FailedAt = outcome.State
	outcome.State = usecase.StateFailed
	outcome.StatusCode = StatusCodeFor(err)
	outcome.Err = pipelineErr

	fields := pipelineErr.(*errs.PipelineError).LogFields()
	fields["channel"] = string(input.Channel)
	if outcome.StatusCode >= http.StatusInternalServerError {
		p.logger.Error("Command message failed", fields)
	} else {
		p.logger.Info("Command message rejected", fields)
	}

	if input.Channel.RepliesToSender() && input.Sender != "" {
		p.dispatcher.Dispatch(ctx, input.Sender, FailureReply(err, outcome.CategoryToken))
		outcome.ReplyAttempt = true
	}

	return outcome, pipelineErr
}

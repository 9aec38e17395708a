// Package orchestrator coordinates one message-processing cycle: detect
// relevant tools, compose the reply synchronously, append everything to the
// session log, and schedule a fire-and-forget tool-result delivery.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	catalogx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/catalog"
	contractx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/contract"
	sessionx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/session"
)

type Option func(*Orchestrator)

func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		if now != nil {
			o.now = now
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

type Orchestrator struct {
	store    sessionx.Store
	detector contractx.Detector
	composer contractx.Composer
	executor contractx.Executor
	catalog  *catalogx.Catalog

	processing atomic.Bool
	deliveries sync.WaitGroup

	logger zerolog.Logger
	now    func() time.Time
}

func New(
	store sessionx.Store,
	detector contractx.Detector,
	composer contractx.Composer,
	executor contractx.Executor,
	catalog *catalogx.Catalog,
	opts ...Option,
) (*Orchestrator, error) {
	if store == nil {
		return nil, errors.New("session store is required")
	}
	if detector == nil {
		return nil, errors.New("tool detector is required")
	}
	if composer == nil {
		return nil, errors.New("response composer is required")
	}
	if executor == nil {
		return nil, errors.New("tool executor is required")
	}
	if catalog == nil {
		return nil, errors.New("tool catalog is required")
	}

	o := &Orchestrator{
		store:    store,
		detector: detector,
		composer: composer,
		executor: executor,
		catalog:  catalog,
		logger:   zerolog.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o, nil
}

// Submit runs one processing cycle for a user message. It returns once the
// assistant's primary reply is in the log; tool results arrive later via a
// scheduled delivery that is never awaited and never cancelled, so a
// delivery for an earlier submission may land after a later one.
//
// Empty or whitespace-only text is rejected with ErrEmptySubmission and
// leaves the session untouched. A second Submit while a synchronous cycle
// is in flight is rejected with ErrBusy; the engine never queues.
func (o *Orchestrator) Submit(
	ctx context.Context,
	sessionID string,
	role contractx.Role,
	text string,
	tx *contractx.TransactionContext,
) error {
	if strings.TrimSpace(text) == "" {
		return contractx.ErrEmptySubmission
	}
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("%w: session id is empty", contractx.ErrValidation)
	}

	if !o.processing.CompareAndSwap(false, true) {
		return contractx.ErrBusy
	}
	defer o.processing.Store(false)

	if err := o.store.Append(ctx, sessionID, sessionx.NewMessage(sessionx.MessageUser, text, o.now())); err != nil {
		return err
	}

	tools, payload, err := o.respond(role, text, tx)
	if err != nil {
		o.logger.Error().
			Err(err).
			Str("session", sessionID).
			Str("role", string(role)).
			Msg("composition failed, replying with fallback")
		apology := sessionx.NewMessage(sessionx.MessageAssistant, fallbackReply(role), o.now())
		return o.store.Append(ctx, sessionID, apology)
	}

	if len(tools) > 0 {
		call := sessionx.NewMessage(sessionx.MessageToolCall, toolCallContent(o.catalog, tools), o.now())
		call.Tool = tools[0]
		call.Context = map[string]any{"tools": toolIDStrings(tools)}
		if err := o.store.Append(ctx, sessionID, call); err != nil {
			return err
		}
	}

	reply := sessionx.NewMessage(sessionx.MessageAssistant, payload.Message, o.now())
	reply.Context = map[string]any{
		"confidence":         payload.Confidence,
		"expected_timeframe": payload.ExpectedTimeframe,
		"suggested_actions":  payload.SuggestedActions,
	}
	if err := o.store.Append(ctx, sessionID, reply); err != nil {
		return err
	}

	o.logger.Info().
		Str("session", sessionID).
		Str("role", string(role)).
		Int("tools", len(tools)).
		Float64("confidence", payload.Confidence).
		Msg("assistant reply appended")

	if len(tools) > 0 {
		o.deliveries.Add(1)
		go o.deliver(sessionID, tools, tx)
	}
	return nil
}

// respond isolates detection and composition so that a panic in either
// degrades to a fallback chat message instead of crossing the orchestrator
// boundary.
func (o *Orchestrator) respond(
	role contractx.Role,
	text string,
	tx *contractx.TransactionContext,
) (tools []contractx.ToolID, payload contractx.ResponsePayload, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", contractx.ErrCompose, r)
		}
	}()

	tools = o.detector.Detect(text, role)
	payload = o.composer.Compose(role, text, tx, tools)
	return tools, payload, nil
}

// deliver executes every detected tool concurrently, waits for all of
// them, and appends one consolidated tool-result message. It runs on a
// background context: a scheduled delivery always fires, even if the
// conversation has moved on. The message's Tool field keeps the first
// detected id, matching what the role dashboards key their rendering on;
// the full list rides in the message context.
func (o *Orchestrator) deliver(
	sessionID string,
	tools []contractx.ToolID,
	tx *contractx.TransactionContext,
) {
	defer o.deliveries.Done()
	ctx := context.Background()

	results := make([]contractx.ToolResult, len(tools))
	var wg sync.WaitGroup
	for i, id := range tools {
		wg.Add(1)
		go func(i int, id contractx.ToolID) {
			defer wg.Done()
			results[i] = <-o.executor.Execute(ctx, id, tx)
		}(i, id)
	}
	wg.Wait()

	var b strings.Builder
	b.WriteString("Completed checks:")
	for _, result := range results {
		def := o.catalog.Lookup(result.Tool)
		fmt.Fprintf(&b, "\n• %s: %s", def.Name, result.Result)
	}

	msg := sessionx.NewMessage(sessionx.MessageToolResult, b.String(), o.now())
	msg.Tool = tools[0]
	msg.Context = map[string]any{"tools": toolIDStrings(tools)}

	if err := o.store.Append(ctx, sessionID, msg); err != nil {
		o.logger.Error().Err(err).Str("session", sessionID).Msg("tool-result append failed")
		return
	}
	o.logger.Info().
		Str("session", sessionID).
		Int("tools", len(tools)).
		Msg("tool results delivered")
}

// Messages returns the session log for rendering.
func (o *Orchestrator) Messages(ctx context.Context, sessionID string) ([]sessionx.Message, error) {
	return o.store.Messages(ctx, sessionID)
}

// IsProcessing reports whether a synchronous processing cycle is in
// flight. Pending tool-result deliveries do not count: the engine is idle
// again as soon as the primary reply is appended.
func (o *Orchestrator) IsProcessing() bool {
	return o.processing.Load()
}

// Wait blocks until every scheduled tool-result delivery has fired. Meant
// for graceful shutdown and tests; normal callers never need it.
func (o *Orchestrator) Wait() {
	o.deliveries.Wait()
}

func toolCallContent(catalog *catalogx.Catalog, tools []contractx.ToolID) string {
	names := make([]string, len(tools))
	for i, id := range tools {
		names[i] = catalog.Lookup(id).Name
	}
	return "Running checks: " + strings.Join(names, ", ")
}

func toolIDStrings(tools []contractx.ToolID) []string {
	out := make([]string, len(tools))
	for i, id := range tools {
		out[i] = string(id)
	}
	return out
}

func fallbackReply(role contractx.Role) string {
	switch contractx.NormalizeRole(role) {
	case contractx.RoleVendor:
		return "I ran into a problem with that request. I can still help with pipeline analysis, deal acceleration, or commission projections — try asking about one of those."
	default:
		return "I ran into a problem with that request. I can still help with credit checks, lender matching, or rate comparisons — try asking about one of those."
	}
}

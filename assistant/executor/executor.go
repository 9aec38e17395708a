// Package executor simulates backend tool invocations. Each call runs in
// its own goroutine, shares no mutable state with other calls, and delivers
// a canned outcome after a configurable delay.
package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	catalogx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/catalog"
	contractx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/contract"
)

// DefaultDelay matches the simulated processing time of the platform's
// mock backends.
const DefaultDelay = 2 * time.Second

// Config carries the environment-tunable executor knobs.
type Config struct {
	Delay time.Duration `split_words:"true" default:"2s"`
}

type Option func(*Simulated)

func WithDelay(delay time.Duration) Option {
	return func(e *Simulated) {
		if delay >= 0 {
			e.delay = delay
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Simulated) {
		e.logger = logger
	}
}

type Simulated struct {
	catalog *catalogx.Catalog
	delay   time.Duration
	logger  zerolog.Logger
}

func New(catalog *catalogx.Catalog, opts ...Option) *Simulated {
	e := &Simulated{
		catalog: catalog,
		delay:   DefaultDelay,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Execute schedules one simulated invocation and returns its result
// channel. The channel is buffered, so the result is delivered even if the
// caller reads late, and closed after delivery. Cancelling ctx abandons
// the invocation without a result; the orchestrator passes a background
// context so scheduled deliveries always fire.
func (e *Simulated) Execute(
	ctx context.Context,
	tool contractx.ToolID,
	tx *contractx.TransactionContext,
) <-chan contractx.ToolResult {
	out := make(chan contractx.ToolResult, 1)

	go func() {
		defer close(out)

		timer := time.NewTimer(e.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			e.logger.Debug().Str("tool", string(tool)).Msg("tool execution abandoned")
			return
		case <-timer.C:
		}

		result := e.resolve(tool, tx)
		e.logger.Debug().
			Str("tool", string(tool)).
			Bool("success", result.Success).
			Msg("tool execution complete")
		out <- result
	}()

	return out
}

func (e *Simulated) resolve(tool contractx.ToolID, tx *contractx.TransactionContext) contractx.ToolResult {
	if !e.catalog.Known(tool) {
		return contractx.ToolResult{
			Tool:    tool,
			Result:  fmt.Sprintf("No backend is registered for %q; the request was recorded but not processed.", tool),
			Success: false,
		}
	}

	def := e.catalog.Lookup(tool)
	result := def.Outcome
	if tx != nil && tx.Type != "" {
		result = fmt.Sprintf("%s Applied to the current %s transaction.", result, tx.Type)
	}
	return contractx.ToolResult{
		Tool:    tool,
		Result:  result,
		Success: true,
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	catalogx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/catalog"
	composex "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/compose"
	contractx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/contract"
	detectx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/detect"
	executorx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/executor"
	orchestratorx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/orchestrator"
	rolesx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/roles"
	sessionx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/session"
	configx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/pkg/config"
	_ "github.com/Eva-Financial-Ai/Eva-Rag-sub003/pkg/logger/autoload"
)

func main() {
	execCfg := configx.MustNew[executorx.Config]("EXECUTOR")

	cat := catalogx.New()
	engine, err := orchestratorx.New(
		sessionx.NewMemoryStore(),
		detectx.New(cat),
		composex.New(cat, rolesx.NewProvider(cat)),
		executorx.New(cat, executorx.WithDelay(execCfg.Delay), executorx.WithLogger(log.Logger)),
		cat,
		orchestratorx.WithLogger(log.Logger),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build assistant engine")
	}

	ctx := context.Background()
	tx := &contractx.TransactionContext{
		Type:        "equipment financing",
		Amount:      1250000,
		Stage:       "underwriting",
		RiskProfile: "moderate",
		Industry:    "logistics",
	}

	if err := engine.Submit(ctx, "demo", contractx.RoleBorrower, "Can I get a loan fast?", tx); err != nil {
		log.Fatal().Err(err).Msg("submit failed")
	}
	engine.Wait()

	msgs, err := engine.Messages(ctx, "demo")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read session log")
	}
	for _, msg := range msgs {
		fmt.Printf("[%s] %s\n\n", msg.Type, msg.Content)
	}
}

// Package compose turns role, detected tools, and ambient transaction
// context into a structured chat reply. Composition is pure and
// synchronous: no tool invocation, no blocking, no error path. Unknown
// roles and unmatched intents fall through to a generic per-role template.
package compose

import (
	"fmt"
	"strings"

	catalogx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/catalog"
	contractx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/contract"
)

type Composer struct {
	catalog  *catalogx.Catalog
	profiles contractx.ProfileProvider
}

func New(catalog *catalogx.Catalog, profiles contractx.ProfileProvider) *Composer {
	return &Composer{
		catalog:  catalog,
		profiles: profiles,
	}
}

// Compose assembles the reply payload. Dispatch is two-level: by role
// first, then by coarse intent via substring checks on the raw message.
func (c *Composer) Compose(
	role contractx.Role,
	message string,
	tx *contractx.TransactionContext,
	tools []contractx.ToolID,
) contractx.ResponsePayload {
	tmpl := c.templateFor(role, strings.ToLower(message))

	var b strings.Builder
	b.WriteString(tmpl.body)
	b.WriteString(" ")
	b.WriteString(transactionSentence(tx))

	if len(tools) > 0 {
		b.WriteString("\n\nAvailable Tools:")
		for _, id := range tools {
			def := c.catalog.Lookup(id)
			fmt.Fprintf(&b, "\n• %s — %s", def.Name, def.Description)
			if def.EstimatedTime != "" {
				fmt.Fprintf(&b, " (est. %s)", def.EstimatedTime)
			}
		}
	}

	if len(tmpl.nextSteps) > 0 {
		b.WriteString("\n\nNext Steps:")
		for i, step := range tmpl.nextSteps {
			fmt.Fprintf(&b, "\n%d. %s", i+1, step.Title)
		}
	}

	return contractx.ResponsePayload{
		Message:           b.String(),
		NextSteps:         cloneSteps(tmpl.nextSteps),
		SuggestedActions:  cloneStrings(tmpl.suggestedActions),
		ExpectedTimeframe: tmpl.timeframe,
		Confidence:        tmpl.confidence,
	}
}

func (c *Composer) templateFor(role contractx.Role, lower string) template {
	switch role {
	case contractx.RoleBorrower:
		switch {
		case containsAny(lower, "loan", "approval", "funding"):
			return borrowerFastApproval
		case containsAny(lower, "rate", "interest", "better terms"):
			return borrowerRateShopping
		}
	case contractx.RoleVendor:
		switch {
		case containsAny(lower, "close", "faster", "accelerate", "deal"):
			return vendorDealAcceleration
		case containsAny(lower, "performance", "analytics", "conversion"):
			return vendorPerformance
		case containsAny(lower, "commission", "payout", "earnings"):
			return vendorCommission
		}
	}
	return genericFor(c.profiles.ProfileFor(role))
}

func transactionSentence(tx *contractx.TransactionContext) string {
	if tx == nil {
		return "No transaction selected — guidance below is general."
	}
	return fmt.Sprintf(
		"Current transaction: %s for $%s at the %s stage.",
		tx.Type, formatAmount(tx.Amount), tx.Stage,
	)
}

// formatAmount renders a dollar amount with thousands separators. Amounts
// here are display-only mock values, so cents are dropped.
func formatAmount(amount float64) string {
	whole := fmt.Sprintf("%.0f", amount)
	neg := strings.HasPrefix(whole, "-")
	if neg {
		whole = whole[1:]
	}
	var parts []string
	for len(whole) > 3 {
		parts = append([]string{whole[len(whole)-3:]}, parts...)
		whole = whole[:len(whole)-3]
	}
	parts = append([]string{whole}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func cloneSteps(steps []contractx.WorkflowStep) []contractx.WorkflowStep {
	out := make([]contractx.WorkflowStep, len(steps))
	copy(out, steps)
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

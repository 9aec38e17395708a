// Package roles resolves a platform persona to its assistant profile: the
// tool catalog slice it may see and the canned goals its workflows start
// from. Pure lookup, no state.
package roles

import (
	catalogx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/catalog"
	contractx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/contract"
)

type Provider struct {
	catalog *catalogx.Catalog
}

func NewProvider(catalog *catalogx.Catalog) *Provider {
	return &Provider{catalog: catalog}
}

// ProfileFor returns the profile for role. Unknown roles resolve to the
// borrower profile so callers never receive an empty tool set.
func (p *Provider) ProfileFor(role contractx.Role) contractx.RoleProfile {
	role = contractx.NormalizeRole(role)
	return contractx.RoleProfile{
		Role:  role,
		Tools: p.catalog.ToolsForRole(role),
		Goals: goalsFor(role),
	}
}

var roleGoals = map[contractx.Role][]contractx.Goal{
	contractx.RoleBorrower: {
		{ID: "secure-funding", Title: "Secure funding", Description: "Move the loan request from application to a funded facility."},
		{ID: "improve-terms", Title: "Improve terms", Description: "Find a rate and structure better than the current offer."},
		{ID: "complete-documentation", Title: "Complete documentation", Description: "Clear every outstanding document requirement."},
	},
	contractx.RoleVendor: {
		{ID: "grow-volume", Title: "Grow funded volume", Description: "Raise the funded total for the current period."},
		{ID: "accelerate-closings", Title: "Accelerate closings", Description: "Shorten the cycle time on in-flight deals."},
		{ID: "expand-network", Title: "Expand partner network", Description: "Add lender partners with appetite for the book."},
	},
	contractx.RoleLender: {
		{ID: "deploy-capital", Title: "Deploy capital", Description: "Place capital into exposures within policy."},
		{ID: "manage-risk", Title: "Manage portfolio risk", Description: "Keep concentration and grade mix inside limits."},
	},
	contractx.RoleAdmin: {
		{ID: "platform-integrity", Title: "Maintain platform integrity", Description: "Keep access grants and audit trails clean."},
	},
	contractx.RoleDeveloper: {
		{ID: "service-health", Title: "Keep services healthy", Description: "Watch endpoint latency and failure budgets."},
	},
}

func goalsFor(role contractx.Role) []contractx.Goal {
	goals := roleGoals[role]
	out := make([]contractx.Goal, len(goals))
	copy(out, goals)
	return out
}

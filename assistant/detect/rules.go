package detect

import (
	"strings"

	contractx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/contract"
)

// overrideRule force-adds tools when any trigger appears anywhere in the
// normalized message. Triggers are substring checks, not token checks, so
// "faster" satisfies a "fast" trigger the same way the heuristics in the
// role dashboards always have.
type overrideRule struct {
	triggers []string
	tools    []contractx.ToolID
}

func (r overrideRule) matches(message string) bool {
	for _, trigger := range r.triggers {
		if strings.Contains(message, trigger) {
			return true
		}
	}
	return false
}

var borrowerRules = []overrideRule{
	{
		triggers: []string{"loan", "credit", "borrow", "funding"},
		tools:    []contractx.ToolID{"credit-check", "lender-match"},
	},
	{
		triggers: []string{"rate", "interest", "terms", "better"},
		tools:    []contractx.ToolID{"rate-comparison"},
	},
	{
		triggers: []string{"fast", "quick", "urgent", "immediate"},
		tools:    []contractx.ToolID{"fast-decline-detection", "pre-approval-calculator"},
	},
}

var vendorRules = []overrideRule{
	{
		triggers: []string{"pipeline", "volume", "accelerate", "faster"},
		tools:    []contractx.ToolID{"deal-accelerator", "pipeline-analysis"},
	},
	{
		triggers: []string{"performance", "analytics", "conversion"},
		tools:    []contractx.ToolID{"performance-dashboard"},
	},
	{
		triggers: []string{"commission", "payout", "earnings"},
		tools:    []contractx.ToolID{"commission-calculator"},
	},
	{
		triggers: []string{"network", "partners", "lenders"},
		tools:    []contractx.ToolID{"partner-network"},
	},
}

func rulesFor(role contractx.Role) []overrideRule {
	switch role {
	case contractx.RoleVendor:
		return vendorRules
	case contractx.RoleBorrower:
		return borrowerRules
	default:
		return nil
	}
}

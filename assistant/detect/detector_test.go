package detect

import (
	"testing"

	catalogx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/catalog"
	contractx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/contract"
)

func newDetector() *Detector {
	return New(catalogx.New())
}

func TestDetectEmptyMessage(t *testing.T) {
	t.Parallel()

	d := newDetector()
	if got := d.Detect("", contractx.RoleBorrower); len(got) != 0 {
		t.Fatalf("expected no tools for empty message, got %v", got)
	}
	if got := d.Detect("   ", contractx.RoleVendor); len(got) != 0 {
		t.Fatalf("expected no tools for whitespace message, got %v", got)
	}
}

func TestDetectBorrowerFastLoan(t *testing.T) {
	t.Parallel()

	d := newDetector()
	got := d.Detect("Can I get a loan fast?", contractx.RoleBorrower)

	want := map[contractx.ToolID]bool{}
	for _, id := range got {
		want[id] = true
	}
	if !want["credit-check"] || !want["lender-match"] {
		t.Fatalf("detection must include credit-check and lender-match, got %v", got)
	}
	if !want["fast-decline-detection"] && !want["pre-approval-calculator"] {
		t.Fatalf("detection must include an expedited-review tool, got %v", got)
	}
}

// Pins catalog declaration order as the tie-break. Truncation to MaxTools
// makes this order observable, so a reorder is a behavior change.
func TestDetectOrderIsCatalogDeclarationOrder(t *testing.T) {
	t.Parallel()

	d := newDetector()
	got := d.Detect("tell me about my loan", contractx.RoleBorrower)
	want := []contractx.ToolID{"credit-check", "lender-match", "pre-approval-calculator"}
	if len(got) != len(want) {
		t.Fatalf("detection = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("detection[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDetectOverrideOnlyMatch(t *testing.T) {
	t.Parallel()

	d := newDetector()
	got := d.Detect("I need money urgently", contractx.RoleBorrower)
	want := []contractx.ToolID{"fast-decline-detection", "pre-approval-calculator"}
	if len(got) != len(want) {
		t.Fatalf("detection = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("detection[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDetectVendorCommission(t *testing.T) {
	t.Parallel()

	d := newDetector()
	got := d.Detect("Show me my commission payouts", contractx.RoleVendor)
	if len(got) != 1 || got[0] != "commission-calculator" {
		t.Fatalf("detection = %v, want [commission-calculator]", got)
	}
}

func TestDetectUnknownRoleUsesBorrowerSet(t *testing.T) {
	t.Parallel()

	d := newDetector()
	got := d.Detect("Can I get a loan fast?", "auditor")
	asBorrower := d.Detect("Can I get a loan fast?", contractx.RoleBorrower)
	if len(got) != len(asBorrower) {
		t.Fatalf("unknown role detection differs from borrower: %v vs %v", got, asBorrower)
	}
	for i := range got {
		if got[i] != asBorrower[i] {
			t.Fatalf("detection[%d] = %s, want %s", i, got[i], asBorrower[i])
		}
	}
}

func TestDetectBoundedAndDeduplicated(t *testing.T) {
	t.Parallel()

	d := newDetector()
	cat := catalogx.New()

	messages := []string{
		"Can I get a loan fast?",
		"I want a better interest rate on my loan with good terms",
		"How can I close this deal faster?",
		"pipeline volume performance commission network partners analytics",
		"document checklist credit funding quick immediate urgent",
		"hello there",
	}
	allRoles := []contractx.Role{
		contractx.RoleBorrower,
		contractx.RoleVendor,
		contractx.RoleLender,
		contractx.RoleAdmin,
		contractx.RoleDeveloper,
		"auditor",
	}

	for _, role := range allRoles {
		available := map[contractx.ToolID]bool{}
		for _, id := range cat.ToolsForRole(role) {
			available[id] = true
		}
		for _, rule := range rulesFor(contractx.NormalizeRole(role)) {
			for _, id := range rule.tools {
				available[id] = true
			}
		}
		for _, msg := range messages {
			got := d.Detect(msg, role)
			if len(got) > MaxTools {
				t.Fatalf("role=%s msg=%q: %d tools exceeds cap", role, msg, len(got))
			}
			seen := map[contractx.ToolID]bool{}
			for _, id := range got {
				if seen[id] {
					t.Fatalf("role=%s msg=%q: duplicate tool %s", role, msg, id)
				}
				seen[id] = true
				if !available[id] {
					t.Fatalf("role=%s msg=%q: tool %s outside role set and overrides", role, msg, id)
				}
			}
		}
	}
}

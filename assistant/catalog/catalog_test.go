package catalog

import (
	"testing"

	contractx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/contract"
)

func TestLookupKnownTool(t *testing.T) {
	t.Parallel()

	c := New()
	def := c.Lookup("credit-check")
	if def.Name != "Credit Check" {
		t.Fatalf("unexpected name: %s", def.Name)
	}
	if def.Category != contractx.CategoryRisk {
		t.Fatalf("unexpected category: %s", def.Category)
	}
	if !c.Known("credit-check") {
		t.Fatal("credit-check must be a known tool")
	}
}

func TestLookupUnknownToolReturnsFallback(t *testing.T) {
	t.Parallel()

	c := New()
	def := c.Lookup("quantum-underwriter")
	if def.Name != "quantum-underwriter" {
		t.Fatalf("fallback name must echo the id, got %s", def.Name)
	}
	if def.Description != FallbackDescription {
		t.Fatalf("unexpected fallback description: %s", def.Description)
	}
	if c.Known("quantum-underwriter") {
		t.Fatal("fallback id must not be reported as known")
	}
}

func TestToolsForRoleDeclarationOrder(t *testing.T) {
	t.Parallel()

	c := New()
	got := c.ToolsForRole(contractx.RoleBorrower)
	want := []contractx.ToolID{
		"credit-check",
		"lender-match",
		"rate-comparison",
		"pre-approval-calculator",
		"fast-decline-detection",
		"document-checklist",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d borrower tools, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tool[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestToolsForRoleUnknownRoleDefaultsToBorrower(t *testing.T) {
	t.Parallel()

	c := New()
	got := c.ToolsForRole("auditor")
	want := c.ToolsForRole(contractx.RoleBorrower)
	if len(got) != len(want) {
		t.Fatalf("expected borrower tool set for unknown role, got %d tools", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tool[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestToolsForRoleVendorDisjointFromBorrower(t *testing.T) {
	t.Parallel()

	c := New()
	borrower := map[contractx.ToolID]bool{}
	for _, id := range c.ToolsForRole(contractx.RoleBorrower) {
		borrower[id] = true
	}
	for _, id := range c.ToolsForRole(contractx.RoleVendor) {
		if borrower[id] {
			t.Fatalf("vendor tool %s is also in the borrower set", id)
		}
	}
}

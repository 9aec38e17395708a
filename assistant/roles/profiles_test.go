package roles

import (
	"testing"

	catalogx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/catalog"
	contractx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/contract"
)

func TestProfileForBorrower(t *testing.T) {
	t.Parallel()

	p := NewProvider(catalogx.New())
	profile := p.ProfileFor(contractx.RoleBorrower)
	if profile.Role != contractx.RoleBorrower {
		t.Fatalf("unexpected role: %s", profile.Role)
	}
	if len(profile.Tools) == 0 {
		t.Fatal("borrower profile must carry tools")
	}
	if len(profile.Goals) != 3 {
		t.Fatalf("expected 3 borrower goals, got %d", len(profile.Goals))
	}
}

func TestProfileForUnknownRoleDefaultsToBorrower(t *testing.T) {
	t.Parallel()

	p := NewProvider(catalogx.New())
	profile := p.ProfileFor("auditor")
	if profile.Role != contractx.RoleBorrower {
		t.Fatalf("unknown role must resolve to borrower, got %s", profile.Role)
	}
	borrower := p.ProfileFor(contractx.RoleBorrower)
	if len(profile.Tools) != len(borrower.Tools) {
		t.Fatalf("unknown role tool set differs from borrower: %d vs %d", len(profile.Tools), len(borrower.Tools))
	}
}

func TestProfileGoalsAreCopies(t *testing.T) {
	t.Parallel()

	p := NewProvider(catalogx.New())
	first := p.ProfileFor(contractx.RoleVendor)
	first.Goals[0].Title = "mutated"

	second := p.ProfileFor(contractx.RoleVendor)
	if second.Goals[0].Title == "mutated" {
		t.Fatal("profile goals must not share backing storage across calls")
	}
}

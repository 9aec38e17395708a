package compose

import (
	"reflect"
	"strings"
	"testing"

	catalogx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/catalog"
	contractx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/contract"
	rolesx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/roles"
)

func newComposer() *Composer {
	cat := catalogx.New()
	return New(cat, rolesx.NewProvider(cat))
}

func TestComposeBorrowerFastApproval(t *testing.T) {
	t.Parallel()

	c := newComposer()
	payload := c.Compose(contractx.RoleBorrower, "Can I get a loan fast?", nil,
		[]contractx.ToolID{"credit-check", "lender-match", "pre-approval-calculator"})

	if payload.Confidence != 0.92 {
		t.Fatalf("confidence = %v, want 0.92", payload.Confidence)
	}
	if !strings.Contains(payload.ExpectedTimeframe, "15 minutes") {
		t.Fatalf("timeframe %q must mention 15 minutes", payload.ExpectedTimeframe)
	}
	if !strings.Contains(payload.Message, "Available Tools:") {
		t.Fatal("message must carry the tool block")
	}
	if !strings.Contains(payload.Message, "• Credit Check — ") {
		t.Fatalf("tool block missing credit check line:\n%s", payload.Message)
	}
	if !strings.Contains(payload.Message, "Next Steps:") {
		t.Fatal("message must carry the next-steps block")
	}
	if !strings.Contains(payload.Message, "No transaction selected") {
		t.Fatal("nil transaction context must degrade to generic phrasing")
	}
}

func TestComposeVendorDealAcceleration(t *testing.T) {
	t.Parallel()

	c := newComposer()
	payload := c.Compose(contractx.RoleVendor, "How can I close this deal faster?", nil, nil)

	if payload.Confidence != 0.94 {
		t.Fatalf("confidence = %v, want 0.94", payload.Confidence)
	}
	if len(payload.NextSteps) != 3 {
		t.Fatalf("expected exactly 3 next steps, got %d", len(payload.NextSteps))
	}
	for i, step := range payload.NextSteps {
		if step.Status != contractx.StepPending {
			t.Fatalf("step[%d] status = %s, want pending", i, step.Status)
		}
	}
}

func TestComposeUnknownRoleGenericTemplate(t *testing.T) {
	t.Parallel()

	c := newComposer()
	payload := c.Compose("auditor", "Can I get a loan fast?", nil, nil)

	if payload.Confidence != 0.8 {
		t.Fatalf("confidence = %v, want 0.8 generic", payload.Confidence)
	}
	if payload.ExpectedTimeframe != "Varies by request" {
		t.Fatalf("unexpected timeframe: %q", payload.ExpectedTimeframe)
	}
	if len(payload.NextSteps) == 0 {
		t.Fatal("generic template must carry goal-derived steps")
	}
}

func TestComposeIsPure(t *testing.T) {
	t.Parallel()

	c := newComposer()
	tx := &contractx.TransactionContext{
		Type:   "equipment financing",
		Amount: 1250000,
		Stage:  "underwriting",
	}
	tools := []contractx.ToolID{"credit-check", "rate-comparison"}

	first := c.Compose(contractx.RoleBorrower, "better interest rate please", tx, tools)
	second := c.Compose(contractx.RoleBorrower, "better interest rate please", tx, tools)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different payloads:\n%+v\n%+v", first, second)
	}
}

func TestComposeTransactionSentence(t *testing.T) {
	t.Parallel()

	c := newComposer()
	tx := &contractx.TransactionContext{
		Type:   "equipment financing",
		Amount: 1250000,
		Stage:  "underwriting",
	}
	payload := c.Compose(contractx.RoleBorrower, "loan status", tx, nil)
	if !strings.Contains(payload.Message, "equipment financing for $1,250,000 at the underwriting stage") {
		t.Fatalf("transaction sentence missing or malformed:\n%s", payload.Message)
	}
}

func TestComposeUnknownToolRendersFallbackLine(t *testing.T) {
	t.Parallel()

	c := newComposer()
	payload := c.Compose(contractx.RoleBorrower, "loan", nil, []contractx.ToolID{"quantum-underwriter"})
	if !strings.Contains(payload.Message, "• quantum-underwriter — "+catalogx.FallbackDescription) {
		t.Fatalf("fallback tool line missing:\n%s", payload.Message)
	}
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	cases := map[float64]string{
		0:        "0",
		950:      "950",
		1000:     "1,000",
		1250000:  "1,250,000",
		-42000:   "-42,000",
		99999999: "99,999,999",
	}
	for in, want := range cases {
		if got := formatAmount(in); got != want {
			t.Fatalf("formatAmount(%v) = %q, want %q", in, got, want)
		}
	}
}

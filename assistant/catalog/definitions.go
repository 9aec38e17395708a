package catalog

import (
	contractx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/contract"
)

// definitions is the full tool registry in declaration order. Detection
// results and per-role tool listings preserve this order, and truncation to
// the detection cap makes the order observable, so entries must not be
// reordered casually.
var definitions = []contractx.ToolDefinition{
	{
		ID:            "credit-check",
		Name:          "Credit Check",
		Description:   "Run a soft credit pull and score the borrower's loan file.",
		Category:      contractx.CategoryRisk,
		EstimatedTime: "2 minutes",
		Outcome:       "Credit profile verified. Score band B+ with no derogatory marks in the last 24 months.",
		Roles:         []contractx.Role{contractx.RoleBorrower},
	},
	{
		ID:            "lender-match",
		Name:          "Lender Match",
		Description:   "Match the loan request with lenders whose programs fit the deal profile.",
		Category:      contractx.CategoryMatching,
		EstimatedTime: "5 minutes",
		Outcome:       "4 lenders matched. Top fit: First Commercial Capital at 92% program alignment.",
		Roles:         []contractx.Role{contractx.RoleBorrower},
	},
	{
		ID:            "rate-comparison",
		Name:          "Rate Comparison",
		Description:   "Compare current rates and terms across matched lending programs.",
		Category:      contractx.CategoryAnalysis,
		EstimatedTime: "3 minutes",
		Outcome:       "Best available rate 7.25% fixed over 60 months, 40bps under the current market median.",
		Roles:         []contractx.Role{contractx.RoleBorrower},
	},
	{
		ID:            "pre-approval-calculator",
		Name:          "Pre-Approval Calculator",
		Description:   "Estimate the loan amount the borrower could be pre-approved for.",
		Category:      contractx.CategoryAnalysis,
		EstimatedTime: "1 minute",
		Outcome:       "Pre-approval estimate: up to $1.4M based on stated revenue and the current risk profile.",
		Roles:         []contractx.Role{contractx.RoleBorrower},
	},
	{
		ID:            "fast-decline-detection",
		Name:          "Fast Decline Detection",
		Description:   "Screen the application for instant-decline conditions before full underwriting.",
		Category:      contractx.CategoryRisk,
		EstimatedTime: "1 minute",
		Outcome:       "No instant-decline conditions found. Application is clear for expedited review.",
		Roles:         []contractx.Role{contractx.RoleBorrower},
	},
	{
		ID:            "document-checklist",
		Name:          "Document Checklist",
		Description:   "Assemble the required document list for the selected financing product.",
		Category:      contractx.CategoryDocuments,
		EstimatedTime: "2 minutes",
		Outcome:       "Checklist generated: 7 required documents, 2 already on file in the vault.",
		Roles:         []contractx.Role{contractx.RoleBorrower},
	},
	{
		ID:            "pipeline-analysis",
		Name:          "Pipeline Analysis",
		Description:   "Analyze the active deal pipeline and flag stalled transactions.",
		Category:      contractx.CategoryAnalysis,
		EstimatedTime: "4 minutes",
		Outcome:       "12 active deals analyzed. 3 stalled at underwriting, 2 waiting on borrower documents.",
		Roles:         []contractx.Role{contractx.RoleVendor},
	},
	{
		ID:            "deal-accelerator",
		Name:          "Deal Accelerator",
		Description:   "Identify the blocking step on each deal and queue acceleration actions.",
		Category:      contractx.CategoryExecution,
		EstimatedTime: "3 minutes",
		Outcome:       "Acceleration actions queued for 5 deals. Expected cycle-time reduction: 1.8 days.",
		Roles:         []contractx.Role{contractx.RoleVendor},
	},
	{
		ID:            "performance-dashboard",
		Name:          "Performance Dashboard",
		Description:   "Summarize conversion metrics and funded volume for the current period.",
		Category:      contractx.CategoryAnalysis,
		EstimatedTime: "2 minutes",
		Outcome:       "Funded volume $8.2M this period, conversion up 6% against the trailing quarter.",
		Roles:         []contractx.Role{contractx.RoleVendor},
	},
	{
		ID:            "commission-calculator",
		Name:          "Commission Calculator",
		Description:   "Project commission payouts across pending and funded transactions.",
		Category:      contractx.CategoryAnalysis,
		EstimatedTime: "1 minute",
		Outcome:       "Projected commissions: $41,300 pending, $18,750 cleared for the next payout run.",
		Roles:         []contractx.Role{contractx.RoleVendor},
	},
	{
		ID:            "partner-network",
		Name:          "Partner Network",
		Description:   "Surface lender partners with appetite for the current transaction profile.",
		Category:      contractx.CategoryMatching,
		EstimatedTime: "3 minutes",
		Outcome:       "6 partners with matching appetite found, 2 accepting expedited submissions.",
		Roles:         []contractx.Role{contractx.RoleVendor},
	},
	{
		ID:            "risk-assessment",
		Name:          "Risk Assessment",
		Description:   "Grade counterparty and collateral risk for the selected exposure.",
		Category:      contractx.CategoryRisk,
		EstimatedTime: "5 minutes",
		Outcome:       "Composite risk grade: B. Collateral coverage ratio 1.6x, within policy.",
		Roles:         []contractx.Role{contractx.RoleLender},
	},
	{
		ID:            "borrower-screening",
		Name:          "Borrower Screening",
		Description:   "Screen applicant history, verification status, and platform track record.",
		Category:      contractx.CategoryCustomer,
		EstimatedTime: "3 minutes",
		Outcome:       "Applicant verified. 2 prior platform facilities, both performing.",
		Roles:         []contractx.Role{contractx.RoleLender},
	},
	{
		ID:            "portfolio-exposure",
		Name:          "Portfolio Exposure",
		Description:   "Report concentration and exposure across the funded portfolio.",
		Category:      contractx.CategoryAnalysis,
		EstimatedTime: "4 minutes",
		Outcome:       "Largest single-industry concentration 18% (logistics), under the 25% policy cap.",
		Roles:         []contractx.Role{contractx.RoleLender},
	},
	{
		ID:            "audit-trail",
		Name:          "Audit Trail",
		Description:   "Reconstruct the event history for a user, session, or record.",
		Category:      contractx.CategoryDocuments,
		EstimatedTime: "2 minutes",
		Outcome:       "248 events reconstructed for the requested window. No integrity gaps found.",
		Roles:         []contractx.Role{contractx.RoleAdmin},
	},
	{
		ID:            "access-review",
		Name:          "Access Review",
		Description:   "Review user permissions and flag grants outside the assigned role.",
		Category:      contractx.CategoryCustomer,
		EstimatedTime: "3 minutes",
		Outcome:       "142 accounts reviewed. 3 grants outside role policy flagged for revocation.",
		Roles:         []contractx.Role{contractx.RoleAdmin},
	},
	{
		ID:            "api-diagnostics",
		Name:          "API Diagnostics",
		Description:   "Probe platform service endpoints and report latency and failure counts.",
		Category:      contractx.CategoryExecution,
		EstimatedTime: "1 minute",
		Outcome:       "All 14 service endpoints healthy. p95 latency 180ms, zero 5xx in the last hour.",
		Roles:         []contractx.Role{contractx.RoleDeveloper, contractx.RoleAdmin},
	},
}

package compose

import (
	contractx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/contract"
)

// template is a fixed reply shape. Confidence and timeframe are static
// per-template constants; they are presentation values, not computed
// signals, and the UI relies on their exact numbers.
type template struct {
	name             string
	body             string
	nextSteps        []contractx.WorkflowStep
	suggestedActions []string
	timeframe        string
	confidence       float64
}

var borrowerFastApproval = template{
	name: "borrower.fast-approval",
	body: "Let's get your financing moving. I can run an expedited review of your file right now and line up matched lenders while the checks complete.",
	nextSteps: []contractx.WorkflowStep{
		{ID: "verify-basics", Title: "Verify application basics", Description: "Confirm entity, revenue, and requested amount.", Required: true, Status: contractx.StepPending, EstimatedTime: "5 minutes"},
		{ID: "credit-review", Title: "Run the credit review", Description: "Soft pull and instant-decline screen on the file.", Required: true, Status: contractx.StepPending, EstimatedTime: "5 minutes"},
		{ID: "lender-selection", Title: "Select matched lenders", Description: "Pick from lenders whose programs fit the request.", Required: true, Status: contractx.StepPending, EstimatedTime: "5 minutes"},
	},
	suggestedActions: []string{
		"Run a credit check",
		"See matched lenders",
		"Calculate my pre-approval amount",
	},
	timeframe:  "15 minutes to a conditional decision",
	confidence: 0.92,
}

var borrowerRateShopping = template{
	name: "borrower.rate-shopping",
	body: "I'll pull the current rate sheet across your matched programs so you can see where a better structure is available before you commit.",
	nextSteps: []contractx.WorkflowStep{
		{ID: "gather-offers", Title: "Gather current offers", Description: "Collect rate and term quotes from matched programs.", Required: true, Status: contractx.StepPending, EstimatedTime: "1 hour"},
		{ID: "compare-programs", Title: "Compare programs", Description: "Line up rate, fees, and covenants side by side.", Required: true, Status: contractx.StepPending, EstimatedTime: "1 hour"},
		{ID: "lock-terms", Title: "Lock preferred terms", Description: "Request a lock on the structure you choose.", Required: false, Status: contractx.StepPending, EstimatedTime: "30 minutes"},
	},
	suggestedActions: []string{
		"Compare rates across lenders",
		"Show fee breakdowns",
		"Request a rate lock",
	},
	timeframe:  "2-4 hours for a full rate sheet",
	confidence: 0.89,
}

var vendorDealAcceleration = template{
	name: "vendor.deal-acceleration",
	body: "I'll find what's blocking this deal and queue the acceleration actions. Most stalls clear once the blocking party has a concrete next step in front of them.",
	nextSteps: []contractx.WorkflowStep{
		{ID: "locate-blockers", Title: "Locate the blocking step", Description: "Identify which milestone the deal is stalled on.", Required: true, Status: contractx.StepPending, EstimatedTime: "10 minutes"},
		{ID: "queue-actions", Title: "Queue acceleration actions", Description: "Push reminders and expedite requests to the blocking party.", Required: true, Status: contractx.StepPending, EstimatedTime: "15 minutes"},
		{ID: "confirm-clearance", Title: "Confirm clearance", Description: "Verify the milestone closes and the deal advances.", Required: true, Status: contractx.StepPending, EstimatedTime: "1 day"},
	},
	suggestedActions: []string{
		"Analyze my pipeline",
		"Accelerate all stalled deals",
		"Show expedite-eligible partners",
	},
	timeframe:  "24-48 hours to clear blocked steps",
	confidence: 0.94,
}

var vendorPerformance = template{
	name: "vendor.performance",
	body: "Here's where your book stands. I can break conversion and funded volume down by product, partner, or period so you can see what's actually moving the number.",
	nextSteps: []contractx.WorkflowStep{
		{ID: "pull-metrics", Title: "Pull current metrics", Description: "Conversion and funded volume for the period.", Required: true, Status: contractx.StepPending, EstimatedTime: "5 minutes"},
		{ID: "segment-results", Title: "Segment the results", Description: "Split by product line and partner.", Required: false, Status: contractx.StepPending, EstimatedTime: "10 minutes"},
	},
	suggestedActions: []string{
		"Open the performance dashboard",
		"Compare against last quarter",
	},
	timeframe:  "1 business day for the full review",
	confidence: 0.88,
}

var vendorCommission = template{
	name: "vendor.commission",
	body: "I'll project your commissions across pending and funded transactions, split between what's cleared for the next payout run and what's still contingent.",
	nextSteps: []contractx.WorkflowStep{
		{ID: "project-payouts", Title: "Project payouts", Description: "Compute cleared and contingent commission totals.", Required: true, Status: contractx.StepPending, EstimatedTime: "5 minutes"},
		{ID: "review-pending", Title: "Review pending deals", Description: "Flag deals whose commissions are at risk of slipping.", Required: false, Status: contractx.StepPending, EstimatedTime: "10 minutes"},
	},
	suggestedActions: []string{
		"Calculate my commissions",
		"Show the next payout run",
	},
	timeframe:  "Available immediately",
	confidence: 0.85,
}

const genericConfidence = 0.8

// genericFor builds the catch-all template for a role from its profile
// goals. Used for lender/admin/developer and any unrecognized role, and as
// the borrower/vendor fallback when no intent phrase matches.
func genericFor(profile contractx.RoleProfile) template {
	steps := make([]contractx.WorkflowStep, 0, len(profile.Goals))
	actions := make([]string, 0, len(profile.Goals))
	for _, goal := range profile.Goals {
		steps = append(steps, contractx.WorkflowStep{
			ID:            goal.ID,
			Title:         goal.Title,
			Description:   goal.Description,
			Required:      false,
			Status:        contractx.StepPending,
			EstimatedTime: "varies",
		})
		actions = append(actions, goal.Title)
	}
	return template{
		name:             "generic." + string(profile.Role),
		body:             "Tell me what you're trying to get done and I'll line up the right checks. Here's what I can help with from where you are now.",
		nextSteps:        steps,
		suggestedActions: actions,
		timeframe:        "Varies by request",
		confidence:       genericConfidence,
	}
}

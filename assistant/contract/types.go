package contract

// Role is the caller's platform persona. It gates which tools and goals the
// assistant exposes. Unknown values are treated as RoleBorrower.
type Role string

const (
	RoleBorrower  Role = "borrower"
	RoleVendor    Role = "vendor"
	RoleLender    Role = "lender"
	RoleAdmin     Role = "admin"
	RoleDeveloper Role = "developer"
)

// Valid reports whether r is one of the roles the platform knows about.
func (r Role) Valid() bool {
	switch r {
	case RoleBorrower, RoleVendor, RoleLender, RoleAdmin, RoleDeveloper:
		return true
	}
	return false
}

// NormalizeRole maps unknown role identifiers to the borrower default.
// Role strings arrive from an external permissions provider and are not
// guaranteed to be values this engine recognizes.
func NormalizeRole(r Role) Role {
	if r.Valid() {
		return r
	}
	return RoleBorrower
}

// ToolID identifies a backend capability in the tool catalog.
type ToolID string

type Category string

const (
	CategoryTransaction Category = "transaction"
	CategoryCustomer    Category = "customer"
	CategoryRisk        Category = "risk"
	CategoryDocuments   Category = "documents"
	CategoryMatching    Category = "matching"
	CategoryExecution   Category = "execution"
	CategoryAnalysis    Category = "analysis"
)

// ToolDefinition is a static catalog entry. Loaded once, never mutated.
type ToolDefinition struct {
	ID            ToolID     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Category      Category   `json:"category"`
	EstimatedTime string     `json:"estimated_time"`
	Outcome       string     `json:"outcome"`
	Roles         []Role     `json:"roles"`
}

// Goal is a canned workflow objective attached to a role profile.
type Goal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RoleProfile maps a role to its tool catalog slice and goal templates.
type RoleProfile struct {
	Role  Role     `json:"role"`
	Tools []ToolID `json:"tools"`
	Goals []Goal   `json:"goals"`
}

type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepInProgress StepStatus = "in_progress"
	StepCompleted  StepStatus = "completed"
	StepBlocked    StepStatus = "blocked"
)

// WorkflowStep is emitted by the composer, always in StepPending state.
// Status transitions after that are owned by the UI, not this engine.
type WorkflowStep struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Required      bool       `json:"required"`
	Status        StepStatus `json:"status"`
	EstimatedTime string     `json:"estimated_time"`
}

// ResponsePayload is the structured reply assembled by the composer.
// Confidence is a static per-template constant, not a computed signal.
type ResponsePayload struct {
	Message           string         `json:"message"`
	NextSteps         []WorkflowStep `json:"next_steps"`
	SuggestedActions  []string       `json:"suggested_actions"`
	ExpectedTimeframe string         `json:"expected_timeframe"`
	Confidence        float64        `json:"confidence"`
}

// ToolResult is the outcome of one simulated tool invocation. Success is
// false when the tool id had no catalog entry and the fallback definition
// was used, so callers can treat the outcome as non-authoritative.
type ToolResult struct {
	Tool    ToolID `json:"tool"`
	Result  string `json:"result"`
	Success bool   `json:"success"`
}

// TransactionContext is the ambient deal context supplied by the external
// transaction provider. A nil pointer is valid and means no transaction is
// selected; consumers must degrade to generic phrasing.
type TransactionContext struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Stage       string  `json:"stage"`
	RiskProfile string  `json:"risk_profile"`
	Industry    string  `json:"industry"`
}

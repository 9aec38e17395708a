package contract

import "context"

// Detector maps a free-text message plus a role to a bounded, deduplicated
// list of relevant tool ids. Empty messages yield an empty result.
type Detector interface {
	Detect(message string, role Role) []ToolID
}

// Composer assembles a structured reply from role, message, ambient
// transaction context, and the detected tools. It is pure and synchronous:
// it never blocks, never invokes tools, and always returns a payload.
type Composer interface {
	Compose(role Role, message string, tx *TransactionContext, tools []ToolID) ResponsePayload
}

// Executor runs one simulated tool invocation and delivers its result on
// the returned channel after the configured delay. Each call is isolated;
// the channel is buffered so the result is never dropped on a slow reader.
type Executor interface {
	Execute(ctx context.Context, tool ToolID, tx *TransactionContext) <-chan ToolResult
}

// ProfileProvider resolves a role to its tool catalog slice and canned
// goal templates. Unknown roles resolve to the borrower profile.
type ProfileProvider interface {
	ProfileFor(role Role) RoleProfile
}

// Package catalog holds the static tool registry the assistant dispatches
// against. Lookups never fail: unknown ids resolve to a fallback definition
// so free-text heuristics upstream can never crash the engine.
package catalog

import (
	contractx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/contract"
)

// FallbackDescription is the description carried by the sentinel definition
// returned for tool ids that have no catalog entry.
const FallbackDescription = "Tool description not available"

type Catalog struct {
	defs []contractx.ToolDefinition
	byID map[contractx.ToolID]int
}

// New builds the catalog from the static definitions. Safe for concurrent
// reads from any number of callers; nothing here mutates after construction.
func New() *Catalog {
	byID := make(map[contractx.ToolID]int, len(definitions))
	for i, def := range definitions {
		byID[def.ID] = i
	}
	return &Catalog{
		defs: definitions,
		byID: byID,
	}
}

// Lookup returns the definition for id, or a fallback definition whose name
// echoes the id when the catalog has no entry.
func (c *Catalog) Lookup(id contractx.ToolID) contractx.ToolDefinition {
	if i, ok := c.byID[id]; ok {
		return c.defs[i]
	}
	return contractx.ToolDefinition{
		ID:          id,
		Name:        string(id),
		Description: FallbackDescription,
	}
}

// Known reports whether id has a real catalog entry, letting callers treat
// fallback outcomes as non-authoritative.
func (c *Catalog) Known(id contractx.ToolID) bool {
	_, ok := c.byID[id]
	return ok
}

// ToolsForRole returns the ids available to role in declaration order.
// Unknown roles resolve to the borrower tool set.
func (c *Catalog) ToolsForRole(role contractx.Role) []contractx.ToolID {
	role = contractx.NormalizeRole(role)
	var ids []contractx.ToolID
	for _, def := range c.defs {
		for _, r := range def.Roles {
			if r == role {
				ids = append(ids, def.ID)
				break
			}
		}
	}
	return ids
}

// Definitions returns a copy of the registry in declaration order.
func (c *Catalog) Definitions() []contractx.ToolDefinition {
	out := make([]contractx.ToolDefinition, len(c.defs))
	copy(out, c.defs)
	return out
}

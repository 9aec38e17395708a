// Package detect maps free text to a bounded set of relevant tool ids.
// This is a keyword heuristic, not language understanding: a tool is
// selected when a message token appears inside its keyword bag, and
// role-specific override rules force-add tools for known phrasings.
package detect

import (
	"strings"
	"unicode"

	catalogx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/catalog"
	contractx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/assistant/contract"
)

const (
	// MaxTools caps the detection result to bound executor fan-out.
	MaxTools = 3

	// Tokens shorter than this match almost any keyword bag as a
	// substring, so they are treated as noise.
	minTokenLen = 4
)

type Detector struct {
	catalog *catalogx.Catalog
}

func New(catalog *catalogx.Catalog) *Detector {
	return &Detector{catalog: catalog}
}

// Detect returns up to MaxTools deduplicated tool ids relevant to message,
// in catalog declaration order for keyword matches followed by override
// additions. An empty or whitespace-only message yields no tools. Unknown
// roles are evaluated against the borrower tool set and rules.
func (d *Detector) Detect(message string, role contractx.Role) []contractx.ToolID {
	normalized := strings.ToLower(strings.TrimSpace(message))
	if normalized == "" {
		return nil
	}
	role = contractx.NormalizeRole(role)
	tokens := tokenize(normalized)

	seen := make(map[contractx.ToolID]bool, MaxTools)
	var out []contractx.ToolID
	add := func(id contractx.ToolID) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	for _, id := range d.catalog.ToolsForRole(role) {
		def := d.catalog.Lookup(id)
		bag := keywordBag(def)
		flat := flattenID(id)
		for _, token := range tokens {
			if strings.Contains(bag, token) || strings.Contains(flat, token) {
				add(id)
				break
			}
		}
	}

	for _, rule := range rulesFor(role) {
		if rule.matches(normalized) {
			for _, id := range rule.tools {
				add(id)
			}
		}
	}

	if len(out) > MaxTools {
		out = out[:MaxTools]
	}
	return out
}

func tokenize(message string) []string {
	fields := strings.Fields(message)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		token := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len(token) >= minTokenLen {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func keywordBag(def contractx.ToolDefinition) string {
	parts := []string{
		def.Name,
		def.Description,
		string(def.Category),
		string(def.ID),
		flattenID(def.ID),
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func flattenID(id contractx.ToolID) string {
	return strings.NewReplacer("-", "", "_", "", ".", "").Replace(string(id))
}

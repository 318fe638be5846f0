// Package policy decides which request paths require an authenticated principal.
package policy

import "strings"

// prefixSuffix marks a pattern that matches its prefix and everything below it.
const prefixSuffix = "/**"

// Requirement is what a path demands from the caller.
type Requirement int

const (
	Authenticated Requirement = iota
	Public
)

func (r Requirement) String() string {
	if r == Public {
		return "public"
	}

	return "authenticated"
}

// MatchKind selects how a rule's pattern is compared with the request path.
type MatchKind int

const (
	Exact MatchKind = iota
	Prefix
)

// Rule binds a path pattern to a requirement.
type Rule struct {
	Pattern     string
	Match       MatchKind
	Requirement Requirement
}

// Matches reports whether path falls under the rule.
// A prefix rule for "/api/auth" matches "/api/auth" and "/api/auth/me" but not "/api/authx".
func (r Rule) Matches(path string) bool {
	if r.Match == Exact {
		return path == r.Pattern
	}

	return path == r.Pattern || strings.HasPrefix(path, r.Pattern+"/")
}

// ParseRule builds a rule from an ant-style pattern. A trailing "/**" makes it a prefix rule.
func ParseRule(pattern string, requirement Requirement) Rule {
	if base, ok := strings.CutSuffix(pattern, prefixSuffix); ok {
		return Rule{Pattern: base, Match: Prefix, Requirement: requirement}
	}

	return Rule{Pattern: pattern, Match: Exact, Requirement: requirement}
}

// Table is an ordered rule list. The first matching rule wins; unmatched paths require authentication.
type Table struct {
	rules []Rule
}

// NewTable copies the rules in evaluation order.
func NewTable(rules ...Rule) *Table {
	return &Table{rules: append([]Rule(nil), rules...)}
}

// Requirement returns what the first matching rule demands.
func (t *Table) Requirement(path string) Requirement {
	for _, rule := range t.rules {
		if rule.Matches(path) {
			return rule.Requirement
		}
	}

	return Authenticated
}

// IsPublic is a shorthand for Requirement(path) == Public.
func (t *Table) IsPublic(path string) bool {
	return t.Requirement(path) == Public
}

// PublicTable marks every pattern public. The authentication gate uses it as its skip list.
func PublicTable(patterns []string) *Table {
	rules := make([]Rule, 0, len(patterns))
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		rules = append(rules, ParseRule(pattern, Public))
	}

	return NewTable(rules...)
}

// DefaultTable is the access policy of the HTTP API.
func DefaultTable() *Table {
	return NewTable(
		ParseRule("/", Public),
		ParseRule("/public", Public),
		ParseRule("/health", Public),
		ParseRule("/api/health", Public),
		ParseRule("/api/users", Public),
		ParseRule("/api/auth/**", Public),
		ParseRule("/api/frontend/**", Public),
		ParseRule("/oauth2/**", Public),
		ParseRule("/login/**", Public),
		ParseRule("/api/protected/**", Authenticated),
	)
}

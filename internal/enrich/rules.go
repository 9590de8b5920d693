package enrich

import (
	"mastermaker/internal/table"
	"mastermaker/pkg/utils"
)

// Predicate tests one record. Predicates read absent fields as empty
// strings and never fail.
type Predicate func(table.Record) bool

// Rule pairs a predicate with the label it yields.
type Rule struct {
	Label string
	When  Predicate
}

// Cascade is an ordered first-match-wins rule list with a default label.
// The order is a document of priority: several rules are deliberately
// not mutually exclusive and reordering them changes results.
type Cascade struct {
	Rules   []Rule
	Default string
}

// Evaluate returns the label of the first matching rule, or the default.
func (c *Cascade) Evaluate(r table.Record) string {
	for _, rule := range c.Rules {
		if rule.When(r) {
			return rule.Label
		}
	}
	return c.Default
}

// Apply evaluates the cascade into the named column on every row.
func (c *Cascade) Apply(t *table.Table, col string) {
	t.Set(col, func(r table.Record) string {
		return c.Evaluate(r)
	})
}

// Predicate combinators and field helpers.

func allOf(ps ...Predicate) Predicate {
	return func(r table.Record) bool {
		for _, p := range ps {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

func anyOf(ps ...Predicate) Predicate {
	return func(r table.Record) bool {
		for _, p := range ps {
			if p(r) {
				return true
			}
		}
		return false
	}
}

func eq(field, want string) Predicate {
	return func(r table.Record) bool {
		return r.Str(field) == want
	}
}

func in(field string, want ...string) Predicate {
	return func(r table.Record) bool {
		return utils.In(r.Str(field), want...)
	}
}

func contains(field string, needles ...string) Predicate {
	return func(r table.Record) bool {
		return utils.ContainsAny(r.Str(field), needles...)
	}
}

func notIn(field string, want ...string) Predicate {
	return func(r table.Record) bool {
		return !utils.In(r.Str(field), want...)
	}
}

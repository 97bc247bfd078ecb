// Package filter selects records from API responses using expr-lang expressions.
//
// Each record (a JSON object such as one movie of a list response) is exposed
// to the expression by its top level keys, so `year >= 2000` and
// `ratings.critics_score > 90` work directly. Helper functions cover common
// lookups:
//
//	criticsScore() > 80 and contains(title, "alien")
//	hasCast("Sigourney Weaver")
//	daysSince(releasedOn("theater")) < 30
package filter

import (
	"maps"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled expression
type Filter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// Evaluate runs the filter against a record
func (f *Filter) Evaluate(record map[string]any) (bool, error) {
	env := make(map[string]any, len(record)+len(f.helpers)+8)
	maps.Copy(env, record)
	maps.Copy(env, f.helpers)
	maps.Copy(env, recordHelpers(record))

	result, err := expr.Run(f.program, env)
	if err != nil {
		title, _ := record["title"].(string)
		return false, &EvaluationError{Expression: f.expression, Title: title, Err: err}
	}

	// AsBool at compile time guarantees the result type
	return result.(bool), nil
}

// Match reports whether the record satisfies the filter. Records that fail
// to evaluate do not match.
func (f *Filter) Match(record map[string]any) bool {
	ok, err := f.Evaluate(record)
	return err == nil && ok
}

// Apply returns the records matching the filter, preserving order
func (f *Filter) Apply(records []map[string]any) []map[string]any {
	matched := make([]map[string]any, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

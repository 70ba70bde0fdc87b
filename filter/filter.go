// Package filter compiles boolean expressions and evaluates them against the
// entries of Graph API list responses.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled boolean expression.
type Filter struct {
	expression string
	program    *vm.Program
}

// CompilationError describes a filter expression that failed to compile.
type CompilationError struct {
	Expression string
	Reason     string
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("cannot compile filter %q: %s", e.Expression, e.Reason)
}

// Compile compiles an expression into an executable filter. Fields of the
// item under evaluation are referenced by name; undefined fields evaluate to
// nil rather than failing, since Graph objects are sparse.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	program, err := expr.Compile(expression,
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: err.Error()}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the source expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single item.
func (f *Filter) Match(item map[string]any) (bool, error) {
	out, err := expr.Run(f.program, item)
	if err != nil {
		return false, fmt.Errorf("evaluating filter %q: %w", f.expression, err)
	}

	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q did not evaluate to a boolean", f.expression)
	}
	return b, nil
}

// Apply returns the items matching the filter. Entries that are not objects
// are dropped, matching how Graph list responses are shaped.
func (f *Filter) Apply(items []any) ([]any, error) {
	var matched []any
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		ok, err := f.Match(m)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

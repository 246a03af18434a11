// Package filter compiles expr-lang expressions into predicates over
// search results, so listings can be narrowed client-side, e.g.:
//
//	VoteAverage >= 7.0 && Year > 1990
//	Contains(Title, "Matrix")
package filter

import (
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/jortega/cinefind/movie"
)

// Filter is a compiled result filter.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(environment(movie.Movie{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// Expression returns the original expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Matches evaluates the filter against one movie. Evaluation errors count
// as no match.
func (f *Filter) Matches(m movie.Movie) bool {
	result, err := expr.Run(f.program, environment(m))
	if err != nil {
		return false
	}
	return result.(bool)
}

// Apply keeps the movies matching the filter, preserving order.
func (f *Filter) Apply(movies []movie.Movie) []movie.Movie {
	matched := make([]movie.Movie, 0, len(movies))
	for _, m := range movies {
		if f.Matches(m) {
			matched = append(matched, m)
		}
	}
	return matched
}

// environment exposes one movie's fields to the expression. Year is an
// integer here (0 when the release date is absent) so numeric comparisons
// read naturally.
func environment(m movie.Movie) map[string]any {
	year := 0
	if m.ReleaseDate != "" {
		year, _ = strconv.Atoi(m.Year())
	}

	return map[string]any{
		"ID":            m.ID,
		"Title":         m.Title,
		"OriginalTitle": m.OriginalTitle,
		"ReleaseDate":   m.ReleaseDate,
		"Overview":      m.Overview,
		"Popularity":    m.Popularity,
		"VoteAverage":   m.VoteAverage,
		"Year":          year,
		"Contains": func(s, substr string) bool {
			return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
		},
	}
}

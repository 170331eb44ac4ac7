package gateway

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// Op is a filter operator. Names follow the PostgREST operator vocabulary.
type Op string

const (
	OpEq       Op = "eq"
	OpNeq      Op = "neq"
	OpGt       Op = "gt"
	OpGte      Op = "gte"
	OpLt       Op = "lt"
	OpLte      Op = "lte"
	OpIn       Op = "in"
	OpNotIn    Op = "not.in"
	OpContains Op = "ilike"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Filter struct {
	Column string
	Op     Op
	Value  any
}

type Order struct {
	Column string
	Desc   bool
}

// Query describes a table-scoped select or update. Filters are ANDed; each
// entry of AnyOf is a group of filters of which at least one must hold.
type Query struct {
	Table   string
	Columns []string
	Filters []Filter
	AnyOf   [][]Filter
	Orders  []Order
	Offset  int
	Limit   int
	// Count asks Select for the exact number of rows matching the filters,
	// ignoring Offset and Limit.
	Count bool
}

// From starts a query on table.
func From(table string) *Query {
	return &Query{Table: table}
}

func (q *Query) Select(columns ...string) *Query {
	q.Columns = append(q.Columns, columns...)
	return q
}

func (q *Query) where(column string, op Op, value any) *Query {
	q.Filters = append(q.Filters, Filter{Column: column, Op: op, Value: value})
	return q
}

// Eq with a nil value matches NULL.
func (q *Query) Eq(column string, value any) *Query  { return q.where(column, OpEq, value) }
func (q *Query) Neq(column string, value any) *Query { return q.where(column, OpNeq, value) }
func (q *Query) Gt(column string, value any) *Query  { return q.where(column, OpGt, value) }
func (q *Query) Gte(column string, value any) *Query { return q.where(column, OpGte, value) }
func (q *Query) Lt(column string, value any) *Query  { return q.where(column, OpLt, value) }
func (q *Query) Lte(column string, value any) *Query { return q.where(column, OpLte, value) }

// In matches any of values. An empty list matches nothing.
func (q *Query) In(column string, values ...any) *Query {
	return q.where(column, OpIn, values)
}

// NotIn excludes values. An empty list is ignored.
func (q *Query) NotIn(column string, values ...any) *Query {
	if len(values) == 0 {
		return q
	}
	return q.where(column, OpNotIn, values)
}

// Contains is a case-insensitive substring match.
func (q *Query) Contains(column, substr string) *Query {
	return q.where(column, OpContains, substr)
}

// Or adds a group of filters of which at least one must match.
func (q *Query) Or(filters ...Filter) *Query {
	if len(filters) > 0 {
		q.AnyOf = append(q.AnyOf, filters)
	}
	return q
}

func (q *Query) OrderBy(column string, desc bool) *Query {
	q.Orders = append(q.Orders, Order{Column: column, Desc: desc})
	return q
}

// Range selects limit rows starting at offset.
func (q *Query) Range(offset, limit int) *Query {
	q.Offset = offset
	q.Limit = limit
	return q
}

func (q *Query) Single() *Query {
	q.Limit = 1
	return q
}

func (q *Query) WithCount() *Query {
	q.Count = true
	return q
}

// HasFilters reports whether the query is constrained at all.
func (q *Query) HasFilters() bool {
	return len(q.Filters) > 0 || len(q.AnyOf) > 0
}

// Validate rejects identifiers that could not be a plain column or table name
// and malformed filter values.
func (q *Query) Validate() error {
	if err := ValidateIdentifier(q.Table); err != nil {
		return err
	}
	for _, c := range q.Columns {
		if err := ValidateIdentifier(c); err != nil {
			return err
		}
	}
	for _, o := range q.Orders {
		if err := ValidateIdentifier(o.Column); err != nil {
			return err
		}
	}
	if q.Offset < 0 || q.Limit < 0 {
		return fmt.Errorf("invalid range offset=%d limit=%d", q.Offset, q.Limit)
	}
	for _, f := range q.Filters {
		if err := f.validate(); err != nil {
			return err
		}
	}
	for _, group := range q.AnyOf {
		for _, f := range group {
			if err := f.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f Filter) validate() error {
	if err := ValidateIdentifier(f.Column); err != nil {
		return err
	}
	switch f.Op {
	case OpEq, OpNeq:
	case OpGt, OpGte, OpLt, OpLte:
		if f.Value == nil {
			return fmt.Errorf("filter %s.%s requires a value", f.Column, f.Op)
		}
	case OpIn, OpNotIn:
		if _, ok := f.Value.([]any); !ok {
			return fmt.Errorf("filter %s.%s requires a list", f.Column, f.Op)
		}
	case OpContains:
		if _, ok := f.Value.(string); !ok {
			return fmt.Errorf("filter %s.%s requires a string", f.Column, f.Op)
		}
	default:
		return fmt.Errorf("unsupported operator %q", f.Op)
	}
	return nil
}

func ValidateIdentifier(name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("invalid identifier %q", name)
	}
	return nil
}

// ValuesOf converts a typed slice into the []any that In and NotIn expect.
func ValuesOf[T any](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// F builds a standalone filter for use in Or groups.
func F(column string, op Op, value any) Filter {
	return Filter{Column: column, Op: op, Value: value}
}

func isSlicePtr(dest any) bool {
	t := reflect.TypeOf(dest)
	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Slice
}

// escapeLike makes a search term match literally inside a LIKE pattern by
// prefixing the wildcards and the escape character itself with esc.
func escapeLike(term string, esc rune) string {
	var b strings.Builder
	b.Grow(len(term))
	for _, r := range term {
		if r == esc || r == '%' || r == '_' {
			b.WriteRune(esc)
		}
		b.WriteRune(r)
	}
	return b.String()
}

package sqlfrag

import (
	"github.com/valyala/bytebufferpool"
)

/*
Predicates accumulates boolean expression fragments for a WHERE clause.

The collection is a pure join container: fragments are kept in append
order, never inspected, deduplicated or reordered. Fragments may be
plain strings (taken verbatim as already-rendered SQL), any Fragment of
this package, another *Predicates (spliced in), or an arbitrary value
formatted with fmt at render time.

	p := sqlfrag.PredicatesFrom("foo = 'bar'").
		And("baz").
		AndAll("hello", "world")
	sql, err := p.AsWhere().Build()
	// WHERE foo = 'bar'
	// AND baz
	// AND hello
	// AND world

There is no OR support. Compose a compound fragment from a nested
render and append it as a single predicate when grouping is needed.
*/
type Predicates struct {
	frags []Fragment
}

// NewPredicates creates an empty collection.
func NewPredicates() *Predicates {
	return &Predicates{}
}

// PredicatesFrom creates a collection seeded with one predicate.
func PredicatesFrom(predicate any) *Predicates {
	return NewPredicates().And(predicate)
}

// PredicatesFromAll creates a collection seeded with the given
// predicates.
func PredicatesFromAll(predicates ...any) *Predicates {
	return NewPredicates().AndAll(predicates...)
}

// Push appends a predicate.
func (p *Predicates) Push(predicate any) {
	p.Extend(predicate)
}

// Extend appends all given predicates in order. A *Predicates argument
// is spliced: its fragments are appended one by one.
func (p *Predicates) Extend(predicates ...any) {
	for _, predicate := range predicates {
		if other, ok := predicate.(*Predicates); ok {
			p.frags = append(p.frags, other.frags...)
			continue
		}
		p.frags = append(p.frags, toFragment(predicate))
	}
}

// And appends a predicate and returns the collection for chaining.
func (p *Predicates) And(predicate any) *Predicates {
	p.Push(predicate)
	return p
}

// AndAll appends all given predicates and returns the collection for
// chaining.
func (p *Predicates) AndAll(predicates ...any) *Predicates {
	p.Extend(predicates...)
	return p
}

// Len returns the number of accumulated predicates.
func (p *Predicates) Len() int {
	return len(p.frags)
}

// Fragments returns the accumulated fragments in append order.
// The returned slice is shared with the collection; do not modify it.
func (p *Predicates) Fragments() []Fragment {
	return p.frags
}

// AsWhere returns a WHERE clause over the accumulated predicates.
// Rendering does not consume the collection; predicates appended later
// show up in subsequent renders.
func (p *Predicates) AsWhere() PredicateStatement {
	return PredicateStatement{keyword: "WHERE", predicates: p.frags}
}

// PredicateStatement is a rendered clause joining predicates with AND,
// one per line. Created by Predicates.AsWhere.
type PredicateStatement struct {
	keyword    string
	predicates []Fragment
}

// WriteSQL appends the clause to buf. Rendering fails only when a
// contained fragment fails to render.
func (ps PredicateStatement) WriteSQL(buf *bytebufferpool.ByteBuffer) error {
	buf.WriteString(ps.keyword)
	buf.WriteByte(' ')
	for i, frag := range ps.predicates {
		if i > 0 {
			buf.WriteString("\nAND ")
		}
		if err := frag.WriteSQL(buf); err != nil {
			return err
		}
	}
	return nil
}

// Build renders the clause to a string.
func (ps PredicateStatement) Build() (string, error) {
	return Build(ps)
}

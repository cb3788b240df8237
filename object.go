package sqlfrag

import (
	"github.com/valyala/bytebufferpool"
)

/*
Object is a generic database object name - a table, a schema, a column,
a sequence - escaped with ObjectConcat rules.

Use the role-specific Schema, Table and Column types where the role is
known; the distinct types keep a column from being passed where a table
is expected.
*/
type Object string

// Name returns the original, unescaped value.
func (o Object) Name() string {
	return string(o)
}

// AsQuotedData returns the object's raw name rendered as a quoted SQL
// literal. Useful when a name has to travel as data, e.g. inside a
// dynamic SQL string passed to EXECUTE.
func (o Object) AsQuotedData() QuotedDataConcat {
	return QuotedDataConcat{string(o)}
}

// WriteSQL appends the escaped object name to buf.
func (o Object) WriteSQL(buf *bytebufferpool.ByteBuffer) error {
	return ObjectConcat{string(o)}.WriteSQL(buf)
}

// Build renders the escaped object name to a string.
func (o Object) Build() (string, error) {
	return Build(o)
}

// Schema is a database schema name.
type Schema string

// Name returns the original, unescaped value.
func (s Schema) Name() string {
	return string(s)
}

// AsQuotedData returns the schema name rendered as a quoted SQL literal.
func (s Schema) AsQuotedData() QuotedDataConcat {
	return Object(s).AsQuotedData()
}

// WriteSQL appends the escaped schema name to buf.
func (s Schema) WriteSQL(buf *bytebufferpool.ByteBuffer) error {
	return Object(s).WriteSQL(buf)
}

// Build renders the escaped schema name to a string.
func (s Schema) Build() (string, error) {
	return Build(s)
}

/*
Table is a database table name.

A Table renders unqualified:

	sqlfrag.Table("users")            // users

Use WithSchema for a qualified name:

	sqlfrag.Table("users").WithSchema("app")  // app.users
*/
type Table string

// WithSchema returns the table qualified with the given schema.
func (t Table) WithSchema(schema Schema) SchemaTable {
	return SchemaTable{Schema: schema, Table: t}
}

/*
WithPostfix returns the table name with a postfix appended, escaped as
one identifier:

	sqlfrag.Table("events").WithPostfix("_staging")  // events_staging

The quoting decision spans the whole result, so a postfix containing a
space quotes the full name rather than producing two adjacent tokens.
*/
func (t Table) WithPostfix(postfix string) ObjectConcat {
	return ObjectConcat{string(t), postfix}
}

// WithPostfixSep returns the table name with a postfix appended after
// the given separator, escaped as one identifier.
func (t Table) WithPostfixSep(postfix, separator string) ObjectConcat {
	return ObjectConcat{string(t), separator, postfix}
}

// Name returns the original, unescaped value.
func (t Table) Name() string {
	return string(t)
}

// AsQuotedData returns the table name rendered as a quoted SQL literal.
func (t Table) AsQuotedData() QuotedDataConcat {
	return Object(t).AsQuotedData()
}

// WriteSQL appends the escaped table name to buf.
func (t Table) WriteSQL(buf *bytebufferpool.ByteBuffer) error {
	return Object(t).WriteSQL(buf)
}

// Build renders the escaped table name to a string.
func (t Table) Build() (string, error) {
	return Build(t)
}

/*
SchemaTable is a table name qualified with a schema.

It renders as schema.table through a single ObjectConcat call, so the
identifier quoting decision covers the qualified name as a whole and
the separator itself never triggers quoting:

	sqlfrag.Table("baz").WithSchema("foo")  // foo.baz
*/
type SchemaTable struct {
	Schema Schema
	Table  Table
}

func (st SchemaTable) parts() ObjectConcat {
	return ObjectConcat{string(st.Schema), ".", string(st.Table)}
}

// WithPostfix returns the qualified name with a postfix appended,
// escaped as one identifier:
//
//	sqlfrag.Table("baz").WithSchema("foo").WithPostfix("_quix")  // foo.baz_quix
func (st SchemaTable) WithPostfix(postfix string) ObjectConcat {
	return append(st.parts(), postfix)
}

// WithPostfixSep returns the qualified name with a postfix appended
// after the given separator, escaped as one identifier.
func (st SchemaTable) WithPostfixSep(postfix, separator string) ObjectConcat {
	return append(st.parts(), separator, postfix)
}

// AsQuotedData returns the qualified name rendered as a quoted SQL
// literal.
func (st SchemaTable) AsQuotedData() QuotedDataConcat {
	return QuotedDataConcat(st.parts())
}

// WriteSQL appends the escaped qualified name to buf.
func (st SchemaTable) WriteSQL(buf *bytebufferpool.ByteBuffer) error {
	return st.parts().WriteSQL(buf)
}

// Build renders the escaped qualified name to a string.
func (st SchemaTable) Build() (string, error) {
	return Build(st)
}

// Column is a table column name.
type Column string

// Name returns the original, unescaped value.
func (c Column) Name() string {
	return string(c)
}

// AsQuotedData returns the column name rendered as a quoted SQL literal.
func (c Column) AsQuotedData() QuotedDataConcat {
	return Object(c).AsQuotedData()
}

// WriteSQL appends the escaped column name to buf.
func (c Column) WriteSQL(buf *bytebufferpool.ByteBuffer) error {
	return Object(c).WriteSQL(buf)
}

// Build renders the escaped column name to a string.
func (c Column) Build() (string, error) {
	return Build(c)
}

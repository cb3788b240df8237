// Package sqlfrag formats escaped, injection-safe fragments of SQL text.
/*

sqlfrag turns raw application strings and typed values into quoted
identifiers, quoted string literals, dialect-specific column type names
and WHERE-clause predicate lists, ready to be placed into a larger SQL
statement by the caller:

	table := sqlfrag.Table("baz").WithSchema("foo")
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s",
		sqlfrag.MustBuild(sqlfrag.Column("foo bar")),
		sqlfrag.MustBuild(table),
		sqlfrag.MustBuild(sqlfrag.Column("blah")),
		sqlfrag.MustBuild(sqlfrag.QuotedData("hello 'world' foo")))
	// SELECT "foo bar" FROM foo.baz WHERE blah = 'hello ''world'' foo'

sqlfrag is a formatting layer only. It never executes or parses SQL,
never connects to a database and never binds parameters - use prepared
statements where your driver supports them and reach for this package
when an identifier or a value has to travel inside the SQL text itself.

Every renderable value implements Fragment. Build renders a fragment to
a string, returning an error when an identifier contains a character
that cannot be escaped. Literal escaping never fails.
*/
package sqlfrag

package sqlfrag

import (
	"github.com/valyala/bytebufferpool"
)

/*
Dialect marks a SQL dialect at the type level.

Column types are parameterized by a dialect marker, so a type name
registered for one dialect cannot be used where another dialect is
expected - mixing them up is a compile error, not a runtime failure:

	bit := sqlfrag.SQLServer{}.Bool()           // ColumnType[SQLServer]
	var t sqlfrag.ColumnType[sqlfrag.MonetDB]
	t = bit                                     // does not compile

A dialect registers one method per supported value type. A value type a
dialect cannot represent simply has no method: MonetDB has no Float32,
so asking it for one fails to compile instead of falling back to a
default at runtime.
*/
type Dialect interface {
	// DialectName returns the dialect's human-readable name.
	DialectName() string
}

// SQLServer is the Microsoft SQL Server dialect marker.
type SQLServer struct{}

// DialectName returns the dialect's human-readable name.
func (SQLServer) DialectName() string { return "SQL Server" }

// Bool returns the column type storing a boolean value.
func (SQLServer) Bool() ColumnType[SQLServer] { return ColumnType[SQLServer]{name: "BIT"} }

// Int8 returns the column type storing an 8-bit signed integer.
func (SQLServer) Int8() ColumnType[SQLServer] { return ColumnType[SQLServer]{name: "TINYINT"} }

// Int16 returns the column type storing a 16-bit signed integer.
func (SQLServer) Int16() ColumnType[SQLServer] { return ColumnType[SQLServer]{name: "SMALLINT"} }

// Int32 returns the column type storing a 32-bit signed integer.
func (SQLServer) Int32() ColumnType[SQLServer] { return ColumnType[SQLServer]{name: "INT"} }

// Int64 returns the column type storing a 64-bit signed integer.
func (SQLServer) Int64() ColumnType[SQLServer] { return ColumnType[SQLServer]{name: "BIGINT"} }

// Float32 returns the column type storing a 32-bit floating point value.
func (SQLServer) Float32() ColumnType[SQLServer] { return ColumnType[SQLServer]{name: "REAL"} }

// Float64 returns the column type storing a 64-bit floating point value.
func (SQLServer) Float64() ColumnType[SQLServer] { return ColumnType[SQLServer]{name: "FLOAT"} }

// String returns the column type storing variable-length text.
func (SQLServer) String() ColumnType[SQLServer] { return ColumnType[SQLServer]{name: "NVARCHAR"} }

// MonetDB is the MonetDB dialect marker.
//
// MonetDB has no 32-bit float column type, so the marker has no Float32
// method.
type MonetDB struct{}

// DialectName returns the dialect's human-readable name.
func (MonetDB) DialectName() string { return "MonetDB" }

// Bool returns the column type storing a boolean value.
func (MonetDB) Bool() ColumnType[MonetDB] { return ColumnType[MonetDB]{name: "BOOLEAN"} }

// Int8 returns the column type storing an 8-bit signed integer.
func (MonetDB) Int8() ColumnType[MonetDB] { return ColumnType[MonetDB]{name: "TINYINT"} }

// Int16 returns the column type storing a 16-bit signed integer.
func (MonetDB) Int16() ColumnType[MonetDB] { return ColumnType[MonetDB]{name: "SMALLINT"} }

// Int32 returns the column type storing a 32-bit signed integer.
func (MonetDB) Int32() ColumnType[MonetDB] { return ColumnType[MonetDB]{name: "INT"} }

// Int64 returns the column type storing a 64-bit signed integer.
func (MonetDB) Int64() ColumnType[MonetDB] { return ColumnType[MonetDB]{name: "BIGINT"} }

// Float64 returns the column type storing a 64-bit floating point value.
func (MonetDB) Float64() ColumnType[MonetDB] { return ColumnType[MonetDB]{name: "DOUBLE"} }

// String returns the column type storing variable-length text.
func (MonetDB) String() ColumnType[MonetDB] { return ColumnType[MonetDB]{name: "STRING"} }

// ColumnType is a column type name bound to a dialect. Obtain values
// from the dialect marker methods, or from NewColumnType for vendor
// types outside the registered set.
type ColumnType[D Dialect] struct {
	name string
}

/*
NewColumnType wraps a raw type name for a dialect:

	geo := sqlfrag.NewColumnType[sqlfrag.SQLServer]("GEOGRAPHY")

The name is escaped with identifier rules when rendered.
*/
func NewColumnType[D Dialect](name string) ColumnType[D] {
	return ColumnType[D]{name: name}
}

// SQLType returns the dialect's type name without escaping.
func (t ColumnType[D]) SQLType() string {
	return t.name
}

// WriteSQL appends the escaped type name to buf.
func (t ColumnType[D]) WriteSQL(buf *bytebufferpool.ByteBuffer) error {
	return Object(t.name).WriteSQL(buf)
}

// Build renders the escaped type name to a string.
func (t ColumnType[D]) Build() (string, error) {
	return Build(t)
}

/*
ColumnSchema is a column name paired with its type for one dialect,
rendered as the "name type" element of a column definition list:

	cs := sqlfrag.NewColumnSchema(sqlfrag.Column("flag"), sqlfrag.SQLServer{}.Bool())
	// renders as: flag BIT
*/
type ColumnSchema[D Dialect] struct {
	column     Column
	columnType ColumnType[D]
}

// NewColumnSchema pairs a column name with a dialect column type.
func NewColumnSchema[D Dialect](column Column, columnType ColumnType[D]) ColumnSchema[D] {
	return ColumnSchema[D]{column: column, columnType: columnType}
}

// Column returns the column name part.
func (cs ColumnSchema[D]) Column() Column {
	return cs.column
}

// Type returns the column type part.
func (cs ColumnSchema[D]) Type() ColumnType[D] {
	return cs.columnType
}

// WriteSQL appends the escaped column definition to buf.
func (cs ColumnSchema[D]) WriteSQL(buf *bytebufferpool.ByteBuffer) error {
	if err := cs.column.WriteSQL(buf); err != nil {
		return err
	}
	buf.WriteByte(' ')
	return cs.columnType.WriteSQL(buf)
}

// Build renders the escaped column definition to a string.
func (cs ColumnSchema[D]) Build() (string, error) {
	return Build(cs)
}

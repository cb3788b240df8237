package sqlfrag

import (
	"github.com/valyala/bytebufferpool"
)

/*
QuotedData is a string value rendered as a quoted SQL literal:

	sqlfrag.QuotedData("hello 'world' foo")  // 'hello ''world'' foo'

Rendering never fails.
*/
type QuotedData string

// Value returns the original, unquoted value.
func (d QuotedData) Value() string {
	return string(d)
}

/*
Map returns a fragment that transforms the value with fn before
quoting. The transformation runs on every render and its result lives
only for that render:

	upper := sqlfrag.QuotedData("it's").Map(strings.ToUpper)
	// renders as 'IT''S'
*/
func (d QuotedData) Map(fn func(string) string) MapQuotedData {
	return MapQuotedData{data: string(d), fn: fn}
}

// WriteSQL appends the quoted literal to buf.
func (d QuotedData) WriteSQL(buf *bytebufferpool.ByteBuffer) error {
	return QuotedDataConcat{string(d)}.WriteSQL(buf)
}

// Build renders the quoted literal to a string.
func (d QuotedData) Build() (string, error) {
	return Build(d)
}

// MapQuotedData is a QuotedData whose value is passed through a
// mapping function at render time. Created by QuotedData.Map.
type MapQuotedData struct {
	data string
	fn   func(string) string
}

// WriteSQL applies the mapping and appends the quoted literal to buf.
func (m MapQuotedData) WriteSQL(buf *bytebufferpool.ByteBuffer) error {
	return QuotedDataConcat{m.fn(m.data)}.WriteSQL(buf)
}

// Build renders the mapped quoted literal to a string.
func (m MapQuotedData) Build() (string, error) {
	return Build(m)
}

package sqlfrag

import (
	"strings"

	"github.com/valyala/bytebufferpool"
)

/*
ObjectConcat renders an ordered list of text fragments as one escaped
SQL identifier.

Escaping rules:

  - fragments are written as-is when none of them contains a space or
    a double quote,
  - otherwise the whole concatenation is wrapped in double quotes and
    every double quote in the input is doubled.

The quote-or-not decision is made once over the whole fragment list.
That is what makes qualified names work: SchemaTable escapes
{"schema", ".", "table"} in a single call, so the separator never gets
quoted on its own and the output never degrades to "schema"."table".

Fragments containing a single quote or a backslash cannot be
represented as identifiers and fail with ErrUnsupportedIdentifierChar.
*/
type ObjectConcat []string

// WriteSQL appends the escaped identifier to buf.
//
// The fragment list is checked up front, before any output is written.
func (oc ObjectConcat) WriteSQL(buf *bytebufferpool.ByteBuffer) error {
	needQuotes := false
	for _, part := range oc {
		// MonetDB rejects ' and \ in object names.
		if strings.ContainsAny(part, `'\`) {
			return &UnsupportedIdentifierCharError{Fragment: part}
		}
		if strings.ContainsAny(part, ` "`) {
			needQuotes = true
		}
	}

	if !needQuotes {
		for _, part := range oc {
			buf.WriteString(part)
		}
		return nil
	}

	buf.WriteByte('"')
	for _, part := range oc {
		writeDoubled(buf, part, '"')
	}
	buf.WriteByte('"')
	return nil
}

// Build renders the escaped identifier to a string.
func (oc ObjectConcat) Build() (string, error) {
	return Build(oc)
}

// AsQuotedData returns the raw fragment text rendered as a quoted SQL
// literal instead of an identifier.
func (oc ObjectConcat) AsQuotedData() QuotedDataConcat {
	return QuotedDataConcat(oc)
}

/*
QuotedDataConcat renders an ordered list of text fragments as one
single-quoted SQL string literal.

Escaping rules:

  - the concatenation is wrapped in single quotes,
  - every single quote is doubled,
  - every backslash is doubled.

Doubling backslashes defends against dialects that give backslash an
escape meaning inside literals. Unlike identifiers, literal rendering
never fails: every input has a quoted representation.
*/
type QuotedDataConcat []string

// WriteSQL appends the quoted literal to buf. The returned error is
// always nil; it exists to satisfy Fragment.
func (qc QuotedDataConcat) WriteSQL(buf *bytebufferpool.ByteBuffer) error {
	buf.WriteByte('\'')
	for _, part := range qc {
		// Scan in runs, copying up to and including each character
		// to be doubled.
		start := 0
		for pos := 0; pos < len(part); pos++ {
			switch part[pos] {
			case '\'', '\\':
				buf.WriteString(part[start : pos+1])
				buf.WriteByte(part[pos])
				start = pos + 1
			}
		}
		buf.WriteString(part[start:])
	}
	buf.WriteByte('\'')
	return nil
}

// Build renders the quoted literal to a string.
func (qc QuotedDataConcat) Build() (string, error) {
	return Build(qc)
}

// writeDoubled copies s into buf doubling every occurrence of c.
func writeDoubled(buf *bytebufferpool.ByteBuffer, s string, c byte) {
	start := 0
	for pos := 0; pos < len(s); pos++ {
		if s[pos] == c {
			buf.WriteString(s[start : pos+1])
			buf.WriteByte(c)
			start = pos + 1
		}
	}
	buf.WriteString(s[start:])
}

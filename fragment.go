package sqlfrag

import (
	"fmt"

	"github.com/valyala/bytebufferpool"
)

/*
Fragment is a renderable piece of SQL text.

All types of this package implement Fragment. Callers may implement it
as well to place custom renderable values into a Predicates collection
or to stream fragments into their own buffers:

	buf := bytebufferpool.Get()
	err := frag.WriteSQL(buf)
	// ...
	bytebufferpool.Put(buf)
*/
type Fragment interface {
	// WriteSQL appends the rendered SQL text of the fragment to buf.
	//
	// On failure buf may hold a partial render; discard its contents.
	WriteSQL(buf *bytebufferpool.ByteBuffer) error
}

/*
Build renders a fragment to a string.

	sql, err := sqlfrag.Build(sqlfrag.Table("baz").WithSchema("foo"))
	// sql is `foo.baz`

The only failure is an identifier containing a single quote or a
backslash, reported as ErrUnsupportedIdentifierChar.
*/
func Build(f Fragment) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := f.WriteSQL(buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

/*
MustBuild renders a fragment to a string and panics on failure.

Use it for fragments built from static, trusted names:

	fmt.Sprintf("DROP TABLE %s", sqlfrag.MustBuild(table))

For names that originate outside the program use Build and handle
the error.
*/
func MustBuild(f Fragment) string {
	s, err := Build(f)
	if err != nil {
		panic(err)
	}
	return s
}

// Raw is an already-rendered SQL fragment written to the output verbatim.
//
// Raw text is not escaped or validated. Never construct a Raw value from
// user-controlled input; use QuotedData or the identifier types instead.
type Raw string

// WriteSQL appends the raw text to buf.
func (r Raw) WriteSQL(buf *bytebufferpool.ByteBuffer) error {
	_, err := buf.WriteString(string(r))
	return err
}

// deferredFragment renders an arbitrary value with fmt at render time,
// so values appended to a Predicates collection are formatted on each
// render, not at append time.
type deferredFragment struct {
	value any
}

func (d deferredFragment) WriteSQL(buf *bytebufferpool.ByteBuffer) error {
	_, err := fmt.Fprint(buf, d.value)
	return err
}

// toFragment adapts a value to Fragment. Strings are taken verbatim as
// already-rendered SQL; everything else is rendered lazily with fmt.
func toFragment(v any) Fragment {
	switch v := v.(type) {
	case Fragment:
		return v
	case string:
		return Raw(v)
	default:
		return deferredFragment{value: v}
	}
}

package sqlfrag_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/sqlfrag/sqlfrag"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/bytebufferpool"
)

func TestObjectConcatPlain(t *testing.T) {
	sql, err := sqlfrag.ObjectConcat{"foo_", "bar", "_baz"}.Build()
	assert.NoError(t, err)
	assert.Equal(t, "foo_bar_baz", sql)
}

func TestObjectConcatQuoted(t *testing.T) {
	sql, err := sqlfrag.ObjectConcat{`hello "world" foo`, `_"quix"`}.Build()
	assert.NoError(t, err)
	assert.Equal(t, `"hello ""world"" foo_""quix"""`, sql)

	sql, err = sqlfrag.ObjectConcat{"foo bar"}.Build()
	assert.NoError(t, err)
	assert.Equal(t, `"foo bar"`, sql)
}

func TestObjectConcatSingleDecision(t *testing.T) {
	// One fragment needing quotes wraps the whole concatenation.
	sql, err := sqlfrag.ObjectConcat{"plain", "_", "with space"}.Build()
	assert.NoError(t, err)
	assert.Equal(t, `"plain_with space"`, sql)
}

func TestObjectConcatRoundTrip(t *testing.T) {
	inputs := [][]string{
		{`a"b`},
		{"has space", `and "quotes"`},
		{`""`, " ", `"`},
	}
	for _, parts := range inputs {
		sql, err := sqlfrag.ObjectConcat(parts).Build()
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(sql, `"`))
		assert.True(t, strings.HasSuffix(sql, `"`))
		inner := sql[1 : len(sql)-1]
		assert.Equal(t, strings.Join(parts, ""), strings.ReplaceAll(inner, `""`, `"`))
	}
}

func TestObjectConcatUnsupported(t *testing.T) {
	for _, parts := range [][]string{
		{"fo'o"},
		{`fo\o`},
		{"fine", "bad'part"},
	} {
		_, err := sqlfrag.ObjectConcat(parts).Build()
		assert.Error(t, err)
		assert.ErrorIs(t, err, sqlfrag.ErrUnsupportedIdentifierChar)

		var charErr *sqlfrag.UnsupportedIdentifierCharError
		assert.True(t, errors.As(err, &charErr))
		assert.Contains(t, parts, charErr.Fragment)
	}
}

func TestObjectConcatFailsBeforeOutput(t *testing.T) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	err := sqlfrag.ObjectConcat{"good", "ba'd"}.WriteSQL(buf)
	assert.Error(t, err)
	assert.Equal(t, 0, buf.Len())
}

func TestQuotedDataConcat(t *testing.T) {
	sql, err := sqlfrag.QuotedDataConcat{"hello 'world' foo"}.Build()
	assert.NoError(t, err)
	assert.Equal(t, `'hello ''world'' foo'`, sql)

	sql, err = sqlfrag.QuotedDataConcat{`back\slash`}.Build()
	assert.NoError(t, err)
	assert.Equal(t, `'back\\slash'`, sql)
}

func TestQuotedDataConcatSpansFragments(t *testing.T) {
	// Quotes adjacent across a fragment boundary are escaped
	// independently, not collapsed.
	sql, err := sqlfrag.QuotedDataConcat{"a'", "'b"}.Build()
	assert.NoError(t, err)
	assert.Equal(t, `'a''''b'`, sql)
}

func TestQuotedDataRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"it's",
		`C:\temp\'mixed'`,
		`''`,
		`\'`,
		`'\`,
		`\\`,
	}
	for _, in := range inputs {
		sql, err := sqlfrag.QuotedDataConcat{in}.Build()
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(sql, "'"))
		assert.True(t, strings.HasSuffix(sql, "'"))
		inner := sql[1 : len(sql)-1]
		inner = strings.ReplaceAll(inner, "''", "'")
		inner = strings.ReplaceAll(inner, `\\`, `\`)
		assert.Equal(t, in, inner)
	}
}

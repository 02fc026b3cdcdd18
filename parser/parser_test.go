package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lisper-lang/lisper/ast"
	"github.com/lisper-lang/lisper/lexer"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			`(a 1 2)`,
			`(a 1 2)`,
		},
		{
			`()`,
			`()`,
		},
		{
			`(set x (add 1 2))`,
			`(set x (add 1 2))`,
		},
		{
			`  ( a ( b c )
				( d 0 ) )`,
			`(a (b c) (d 0))`,
		},
		{
			`(a 1) (b 2)`,
			`(a 1) (b 2)`,
		},
		{
			`x`,
			`x`,
		},
		{
			`007`,
			`0 0 7`,
		},
		{
			``,
			``,
		},
	}

	{
		for i := range testCases {
			root, err := Parse([]byte(testCases[i].In))

			assert.NoError(t, err)
			assert.NotNil(t, root)

			assert.Equal(t, testCases[i].Out, string(ast.Encode(root)), "case %q", testCases[i].In)
		}
	}
}

func TestParseNodeShapes(t *testing.T) {
	root, err := Parse([]byte(`(set x (add 1 2))`))
	require.NoError(t, err)
	require.Len(t, root.List(), 1)

	outer := root.List()[0]
	require.Equal(t, ast.NodeTypeList, outer.Type())
	require.Len(t, outer.List(), 3)

	assert.Equal(t, ast.NodeTypeIdentifier, outer.List()[0].Type())
	assert.Equal(t, "set", outer.List()[0].Name())

	assert.Equal(t, ast.NodeTypeIdentifier, outer.List()[1].Type())
	assert.Equal(t, "x", outer.List()[1].Name())

	inner := outer.List()[2]
	require.Equal(t, ast.NodeTypeList, inner.Type())
	require.Len(t, inner.List(), 3)
	assert.Equal(t, "add", inner.List()[0].Name())
	assert.Equal(t, int64(1), inner.List()[1].Int64())
	assert.Equal(t, int64(2), inner.List()[2].Int64())

	assert.Same(t, outer, inner.Parent())
}

func TestParseEmptyList(t *testing.T) {
	root, err := Parse([]byte(`()`))
	require.NoError(t, err)
	require.Len(t, root.List(), 1)

	node := root.List()[0]
	assert.Equal(t, ast.NodeTypeList, node.Type())
	assert.Len(t, node.List(), 0)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{`)`, ErrUnexpectedToken},
		{`(a b`, ErrUnterminatedList},
		{`(`, ErrUnterminatedList},
		{`(a ? b)`, ErrUnexpectedToken},
		{`(a))`, ErrUnexpectedToken},
		{`(a (b 1)`, ErrUnterminatedList},
	}

	{
		for i := range testCases {
			root, err := Parse([]byte(testCases[i].In))

			assert.Nil(t, root)
			assert.ErrorIs(t, err, testCases[i].Err, "case %q", testCases[i].In)
		}
	}
}

func TestSyntaxErrorToken(t *testing.T) {
	_, err := Parse([]byte(`)`))
	require.Error(t, err)

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)

	assert.True(t, syntaxErr.Token.Is(lexer.TokenCloseParen))
	assert.Equal(t, ")", syntaxErr.Token.Text())
}

// After a failed expression the cursor stays consistent: the caller may
// read a fresh top-level expression starting from the next token.
func TestParseExpressionRecovers(t *testing.T) {
	p := New(strings.NewReader(`(a 1) ) (b 2)`))

	first, err := p.ParseExpression()
	require.NoError(t, err)
	assert.Equal(t, "(a 1)", string(ast.Encode(first)))

	_, err = p.ParseExpression()
	assert.ErrorIs(t, err, ErrUnexpectedToken)

	third, err := p.ParseExpression()
	require.NoError(t, err)
	assert.Equal(t, "(b 2)", string(ast.Encode(third)))

	assert.True(t, p.AtEOF())
}

func TestParseExpressionAtEOF(t *testing.T) {
	p := New(strings.NewReader(` `))

	assert.True(t, p.AtEOF())

	_, err := p.ParseExpression()
	assert.ErrorIs(t, err, ErrUnexpectedToken)
}

func TestParseDeepNesting(t *testing.T) {
	depth := 512
	in := strings.Repeat("(a ", depth) + "0" + strings.Repeat(")", depth)

	root, err := Parse([]byte(in))
	require.NoError(t, err)

	n := root.List()[0]
	for i := 0; i < depth-1; i++ {
		require.Equal(t, ast.NodeTypeList, n.Type())
		n = n.List()[1]
	}
}

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanner(t *testing.T) {
	testCases := []string{
		`1`,

		`0`,

		`()`,

		`(a 1 2)`,

		`(set x (add 1 2))`,

		`(outer (inner 10 20)
			(inner 30 40)
		)`,

		`weird $ input ? with # noise`,
	}

	{
		for i := range testCases {
			tokens, err := Tokenize([]byte(testCases[i]))
			t.Logf("tokens: %v", tokens)

			assert.NotNil(t, tokens)
			assert.NoError(t, err)
		}
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			``,
			[]TokenType{
				TokenEOF,
			},
		},
		{
			" \t\n\r ",
			[]TokenType{
				TokenEOF,
			},
		},
		{
			`1`,
			[]TokenType{
				TokenNumber,
				TokenEOF,
			},
		},
		{
			`abc`,
			[]TokenType{
				TokenIdentifier,
				TokenEOF,
			},
		},
		{
			`()`,
			[]TokenType{
				TokenOpenParen,
				TokenCloseParen,
				TokenEOF,
			},
		},
		{
			`(a 1 2)`,
			[]TokenType{
				TokenOpenParen,
				TokenIdentifier,
				TokenNumber,
				TokenNumber,
				TokenCloseParen,
				TokenEOF,
			},
		},
		{
			`?`,
			[]TokenType{
				TokenUnknown,
				TokenEOF,
			},
		},
		{
			`(set x
				(add 1 2))`,
			[]TokenType{
				TokenOpenParen,
				TokenIdentifier,
				TokenIdentifier,
				TokenOpenParen,
				TokenIdentifier,
				TokenNumber,
				TokenNumber,
				TokenCloseParen,
				TokenCloseParen,
				TokenEOF,
			},
		},
	}

	getTokenTypes := func(tokens []Token) []TokenType {
		tt := make([]TokenType, 0, len(tokens))
		for i := range tokens {
			tt = append(tt, tokens[i].tt)
		}
		return tt
	}

	{
		for i := range testCases {
			tokens, err := Tokenize([]byte(testCases[i].In))

			assert.NotNil(t, tokens)
			assert.NoError(t, err)

			assert.Equal(t, testCases[i].Out, getTokenTypes(tokens), "case %q", testCases[i].In)
		}
	}
}

func TestIdentifierText(t *testing.T) {
	testCases := []string{
		`a`,
		`abc`,
		`aB3c`,
		`set`,
		`Z9`,
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i]))
		assert.NoError(t, err)

		assert.Len(t, tokens, 2)
		assert.True(t, tokens[0].Is(TokenIdentifier))
		assert.Equal(t, testCases[i], tokens[0].Text())
	}
}

func TestNumberText(t *testing.T) {
	testCases := []struct {
		In  string
		Out []string
	}{
		{`0`, []string{"0"}},
		{`7`, []string{"7"}},
		{`42`, []string{"42"}},
		{`90210`, []string{"90210"}},

		// a leading zero ends the literal at once
		{`007`, []string{"0", "0", "7"}},
		{`0123`, []string{"0", "123"}},
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))
		assert.NoError(t, err)

		texts := []string{}
		for _, tok := range tokens {
			if tok.Is(TokenNumber) {
				texts = append(texts, tok.Text())
			} else {
				assert.True(t, tok.Is(TokenEOF))
			}
		}
		assert.Equal(t, testCases[i].Out, texts, "case %q", testCases[i].In)
	}
}

func TestUnknownText(t *testing.T) {
	tokens, err := Tokenize([]byte("a % b"))
	assert.NoError(t, err)

	assert.Len(t, tokens, 4)
	assert.True(t, tokens[1].Is(TokenUnknown))
	assert.Equal(t, "%", tokens[1].Text())
}

func TestColumnAndLines(t *testing.T) {
	tokens, err := Tokenize([]byte("(a\n bc)"))
	assert.NoError(t, err)

	expected := [][2]int{
		{1, 1}, // (
		{1, 2}, // a
		{2, 2}, // bc
		{2, 4}, // )
		{2, 5}, // EOF
	}

	assert.Len(t, tokens, len(expected))
	for i := range expected {
		line, col := tokens[i].Pos()
		assert.Equal(t, expected[i], [2]int{line, col}, "token %v", tokens[i])
	}
}

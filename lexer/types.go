package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenOpenParen            // Open parenthesis: "("
	TokenCloseParen           // Close parenthesis: ")"
	TokenIdentifier           // A letter followed by letters or digits
	TokenNumber               // "0", or a nonzero digit followed by digits
	TokenUnknown              // Any single character outside the grammar
	TokenEOF                  // End of input
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenOpenParen:  "open_paren",
	TokenCloseParen: "close_paren",
	TokenIdentifier: "identifier",
	TokenNumber:     "number",
	TokenUnknown:    "unknown",
	TokenEOF:        "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isOpenParen(r rune) bool {
	return r == '('
}

func isCloseParen(r rune) bool {
	return r == ')'
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

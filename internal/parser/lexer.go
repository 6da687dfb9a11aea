package parser

import "strings"

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenString
	tokenEOF
)

type token struct {
	kind   tokenKind
	text   string
	line   int
	column int
}

// lex splits one command line into word and quoted-string tokens.
// Words may contain the date and number punctuation used by the grammar
// (digits, '-', '/', '.'); everything else ends a word. Keywords are not
// distinguished here, the parser matches them case-insensitively.
func lex(input string) ([]token, error) {
	var tokens []token
	line, col := 1, 1

	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]

		switch {
		case r == '\n':
			line++
			col = 1
			i++
		case r == ' ' || r == '\t' || r == '\r':
			col++
			i++
		case r == '"':
			startLine, startCol := line, col
			i++
			col++
			var sb strings.Builder
			closed := false
			for i < len(runes) {
				if runes[i] == '"' {
					closed = true
					i++
					col++
					break
				}
				if runes[i] == '\n' {
					break
				}
				sb.WriteRune(runes[i])
				i++
				col++
			}
			if !closed {
				return nil, &SyntaxError{
					Line:    startLine,
					Column:  startCol,
					Token:   `"` + sb.String(),
					Message: "unterminated quoted string",
				}
			}
			tokens = append(tokens, token{kind: tokenString, text: sb.String(), line: startLine, column: startCol})
		default:
			startCol := col
			var sb strings.Builder
			for i < len(runes) && isWordRune(runes[i]) {
				sb.WriteRune(runes[i])
				i++
				col++
			}
			if sb.Len() == 0 {
				return nil, &SyntaxError{
					Line:    line,
					Column:  col,
					Token:   string(r),
					Message: "unexpected character",
				}
			}
			tokens = append(tokens, token{kind: tokenWord, text: sb.String(), line: line, column: startCol})
		}
	}

	tokens = append(tokens, token{kind: tokenEOF, text: "", line: line, column: col})
	return tokens, nil
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '/' || r == '.' || r == '_':
		return true
	}
	return false
}

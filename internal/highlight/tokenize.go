package highlight

// TokenType identifies the kind of JSON token for syntax coloring.
type TokenType int

const (
	TokenKey TokenType = iota
	TokenString
	TokenNumber
	TokenBool
	TokenNull
	TokenPunct
	TokenWhitespace
)

// Token holds a single lexed JSON token.
type Token struct {
	Type  TokenType
	Value string
}

// Tokenize breaks a JSON string into typed tokens. Concatenating every
// Value reproduces input exactly.
func Tokenize(input string) []Token {
	tokens := make([]Token, 0, 128)
	i := 0

	for i < len(input) {
		ch := input[i]

		switch {
		case ch == '"':
			j := i + 1
			for j < len(input) {
				if input[j] == '\\' {
					j += 2
					continue
				}
				if input[j] == '"' {
					j++
					break
				}
				j++
			}
			if j > len(input) {
				j = len(input)
			}
			tokens = append(tokens, Token{Type: TokenString, Value: input[i:j]})
			i = j

		case ch == '-' || (ch >= '0' && ch <= '9'):
			j := i + 1
			for j < len(input) {
				c := input[j]
				if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
					j++
				} else {
					break
				}
			}
			tokens = append(tokens, Token{Type: TokenNumber, Value: input[i:j]})
			i = j

		case ch == 't' && i+4 <= len(input) && input[i:i+4] == "true":
			tokens = append(tokens, Token{Type: TokenBool, Value: "true"})
			i += 4

		case ch == 'f' && i+5 <= len(input) && input[i:i+5] == "false":
			tokens = append(tokens, Token{Type: TokenBool, Value: "false"})
			i += 5

		case ch == 'n' && i+4 <= len(input) && input[i:i+4] == "null":
			tokens = append(tokens, Token{Type: TokenNull, Value: "null"})
			i += 4

		case isSpace(ch):
			j := i + 1
			for j < len(input) && isSpace(input[j]) {
				j++
			}
			tokens = append(tokens, Token{Type: TokenWhitespace, Value: input[i:j]})
			i = j

		default:
			// Structural characters, plus anything unexpected
			tokens = append(tokens, Token{Type: TokenPunct, Value: input[i : i+1]})
			i++
		}
	}

	// Second pass: promote strings that precede a colon to keys.
	for idx := 0; idx < len(tokens); idx++ {
		if tokens[idx].Type != TokenString {
			continue
		}
		for j := idx + 1; j < len(tokens); j++ {
			if tokens[j].Type == TokenWhitespace {
				continue
			}
			if tokens[j].Type == TokenPunct && tokens[j].Value == ":" {
				tokens[idx].Type = TokenKey
			}
			break
		}
	}

	return tokens
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

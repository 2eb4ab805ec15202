package highlight

import (
	"encoding/json"
	"strings"

	"github.com/fatih/color"

	"github.com/shhac/postie/internal/format"
)

var tokenColors = map[TokenType]*color.Color{
	TokenKey:    color.New(color.FgCyan),
	TokenString: color.New(color.FgGreen),
	TokenNumber: color.New(color.FgYellow),
	TokenBool:   color.New(color.FgMagenta),
	TokenNull:   color.New(color.Faint),
}

var bucketColors = map[format.Bucket]*color.Color{
	format.BucketNeutral:     color.New(color.FgWhite),
	format.BucketSuccess:     color.New(color.FgGreen, color.Bold),
	format.BucketRedirect:    color.New(color.FgBlue, color.Bold),
	format.BucketClientError: color.New(color.FgYellow, color.Bold),
	format.BucketServerError: color.New(color.FgRed, color.Bold),
}

// ANSI colors JSON tokens for a terminal. Invalid JSON is returned as is.
// Output is plain when color.NoColor is set (not a TTY, NO_COLOR).
func ANSI(text string) string {
	if !json.Valid([]byte(text)) {
		return text
	}

	var b strings.Builder
	for _, tok := range Tokenize(text) {
		if c, ok := tokenColors[tok.Type]; ok {
			b.WriteString(c.Sprint(tok.Value))
			continue
		}
		b.WriteString(tok.Value)
	}
	return b.String()
}

// Status colors a status label with its bucket color.
func Status(label string, bucket format.Bucket) string {
	c, ok := bucketColors[bucket]
	if !ok {
		c = bucketColors[format.BucketNeutral]
	}
	return c.Sprint(label)
}

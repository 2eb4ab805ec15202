package format

import (
	"bytes"
	"encoding/json"
)

// Indent is the indentation used for every rendered JSON body.
const Indent = "  "

// PrettyJSON re-indents text with two spaces. It reports false and returns
// text unchanged when text is not valid JSON. Key order and number literals
// are kept as they appeared in the input.
func PrettyJSON(text string) (string, bool) {
	src := bytes.TrimSpace([]byte(text))
	if len(src) == 0 || !json.Valid(src) {
		return text, false
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, src, "", Indent); err != nil {
		return text, false
	}
	return buf.String(), true
}

// FormatJSON is PrettyJSON without the flag: invalid JSON comes back as is.
func FormatJSON(text string) string {
	out, _ := PrettyJSON(text)
	return out
}

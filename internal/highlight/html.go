package highlight

import (
	"encoding/json"
	"html/template"
	"strings"
)

// cssClass maps token types to the class names the browser stylesheet colors.
var cssClass = map[TokenType]string{
	TokenKey:    "json-key",
	TokenString: "json-string",
	TokenNumber: "json-number",
	TokenBool:   "json-boolean",
	TokenNull:   "json-null",
}

// HTML escapes text and wraps each JSON token in a classed span. Text that is
// not valid JSON is escaped and returned without any spans.
func HTML(text string) template.HTML {
	if !json.Valid([]byte(text)) {
		return template.HTML(template.HTMLEscapeString(text))
	}

	var b strings.Builder
	b.Grow(len(text) * 2)
	for _, tok := range Tokenize(text) {
		class, ok := cssClass[tok.Type]
		if !ok {
			b.WriteString(template.HTMLEscapeString(tok.Value))
			continue
		}
		b.WriteString(`<span class="`)
		b.WriteString(class)
		b.WriteString(`">`)
		b.WriteString(template.HTMLEscapeString(tok.Value))
		b.WriteString(`</span>`)
	}
	return template.HTML(b.String())
}

package assemble

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// escapeHTML escapes text for HTML attribute and element content. Single
// quotes are left alone; generated markup always uses double-quoted
// attributes.
func escapeHTML(s string) string {
	if s == "" {
		return ""
	}
	return htmlEscaper.Replace(s)
}

var jsonEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
)

// escapeJSON escapes text for hand-assembled JSON-LD string values.
func escapeJSON(s string) string {
	if s == "" {
		return ""
	}
	return jsonEscaper.Replace(s)
}

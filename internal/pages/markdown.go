package pages

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

var (
	markdown  = goldmark.New()
	sanitizer = bluemonday.UGCPolicy()
)

// Markdown renders a narrative body to sanitized HTML
func Markdown(src string) g.Node {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return h.P(g.Text(src))
	}
	return g.Raw(string(sanitizer.SanitizeBytes(buf.Bytes())))
}

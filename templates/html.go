package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// component adapts a plain writer func into a templ.Component so handlers can
// call Render(ctx, w) uniformly.
func component(render func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return render(w)
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) write(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func writeDocumentHead(ew *errWriter, title, bodyClass string) {
	ew.printf(`<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="/static/css/style.css">
</head>
<body class="%s">
`, esc(title), esc(bodyClass))
}

func writeDocumentFoot(ew *errWriter) {
	ew.write("</body>\n</html>\n")
}

// Package render produces the public HTML artifact for a publication entry.
// The page is deliberately minimal; the real presentation layer lives with
// the static host consuming the materialized files.
package render

import (
	"bytes"
	"html/template"

	"github.com/sidereusnuntius/namecard/internal/domain"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Record.Handle}}</title>
</head>
<body>
<main>
{{if .Record.AvatarRef}}<img src="/f/{{.Record.AvatarRef}}" alt="">{{end}}
<h1>{{.Record.Title}}</h1>
<p>{{.Record.Description}}</p>
{{if .Record.Email}}<a href="mailto:{{.Record.Email}}">{{.Record.Email}}</a>{{end}}
<ul>
{{range .Record.Links}}<li><a href="{{.URL}}" rel="noopener noreferrer">{{.Platform}}</a></li>
{{end}}</ul>
</main>
</body>
</html>
`))

var notFound = template.Must(template.New("notfound").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Not found</title>
</head>
<body>
<main>
<h1>Not found</h1>
<p>There is no card here.</p>
</main>
</body>
</html>
`))

func Page(entry domain.PublicationEntry) ([]byte, error) {
	var buf bytes.Buffer
	err := page.Execute(&buf, entry)
	return buf.Bytes(), err
}

// NotFound is the same generic page for every unresolvable handle, so an
// unclaimed handle is indistinguishable from a malformed one.
func NotFound() []byte {
	var buf bytes.Buffer
	_ = notFound.Execute(&buf, nil)
	return buf.Bytes()
}

package web

import (
	"bytes"
	_ "embed"
	"html/template"
	"medisense-service/internal/pkg/constvars"
	"net/http"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type indexData struct {
	APIBase string
}

// NewIndexHandler renders the single page holding the auth and consultation views.
// apiBase is the mounted API root, e.g. /api/v1.
func NewIndexHandler(apiBase string) (http.HandlerFunc, error) {
	var rendered bytes.Buffer
	err := indexTemplate.Execute(&rendered, indexData{APIBase: apiBase})
	if err != nil {
		return nil, err
	}
	page := rendered.Bytes()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
		w.WriteHeader(http.StatusOK)
		w.Write(page)
	}, nil
}

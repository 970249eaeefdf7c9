package web

import (
	"bytes"
	"html/template"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"

	"github.com/jlabath/mini-server/internal/listing"
)

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>index</title>
  </head>
  <body>
    <h3>Welcome</h3>
<ul>
{{range .}}<li><a href="{{.Name}}">{{.Name}}</a> ({{.Size}})</li>
{{end}}</ul></body></html>
`))

// indexItem is one rendered row of the index page.
type indexItem struct {
	Name string
	Size string
}

// handleIndex renders the listing of the document root. A listing failure
// degrades to an empty page rather than an error response.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	files, err := listing.Files(s.cfg.Root, s.logger)
	if err != nil {
		level.Warn(s.logger).Log(
			"msg", "directory listing failed",
			"dir", s.cfg.Root,
			"err", err,
		)
	}

	items := make([]indexItem, 0, len(files))
	for _, f := range files {
		items = append(items, indexItem{Name: f.Name, Size: humanize.Bytes(f.Size)})
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, items); err != nil {
		trouble(w)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// handleFile serves one file from under the document root, fully buffered.
func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(r.URL.Path, "/")
	if !safePath(rel) {
		forbidden(w)
		return
	}

	f, err := os.Open(filepath.Join(s.cfg.Root, filepath.FromSlash(rel)))
	if err != nil {
		// Missing, unreadable, and unopenable all collapse to 404.
		notFound(w)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		trouble(w)
		return
	}
	if info.IsDir() {
		notFound(w)
		return
	}

	contents, err := io.ReadAll(f)
	if err != nil {
		trouble(w)
		return
	}

	w.Header().Set("Content-Type", s.types.Resolve(rel))
	w.WriteHeader(http.StatusOK)
	w.Write(contents)
}

// safePath rejects any candidate containing a parent-directory token. The
// check is substring-coarse on purpose: names like "a..b.txt" are refused
// too, as defense in depth against traversal.
func safePath(rel string) bool {
	return !strings.Contains(rel, "..")
}

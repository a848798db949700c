package docs

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var specYAML []byte

const scalarCDN = "https://cdn.jsdelivr.net"

var referencePage = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html><head>
  <title>{{.Title}} Reference</title>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
</head><body>
  <script id="api-reference" data-url="{{.SpecURL}}"></script>
  <script src="` + scalarCDN + `/npm/@scalar/api-reference"></script>
</body></html>`))

type openAPIDoc struct {
	Info struct {
		Title   string `yaml:"title"`
		Version string `yaml:"version"`
	} `yaml:"info"`
	Paths map[string]yaml.Node `yaml:"paths"`
}

// Docs serves the embedded OpenAPI document and a Scalar reference page for it.
type Docs struct {
	title string
	paths []string
	page  []byte
}

func New(specURL string) (*Docs, error) {
	var doc openAPIDoc
	if err := yaml.Unmarshal(specYAML, &doc); err != nil {
		return nil, fmt.Errorf("parsing openapi.yaml: %w", err)
	}

	paths := make([]string, 0, len(doc.Paths))
	for p := range doc.Paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var buf bytes.Buffer
	if err := referencePage.Execute(&buf, struct{ Title, SpecURL string }{doc.Info.Title, specURL}); err != nil {
		return nil, fmt.Errorf("rendering docs page: %w", err)
	}

	return &Docs{title: doc.Info.Title, paths: paths, page: buf.Bytes()}, nil
}

func (d *Docs) Title() string   { return d.title }
func (d *Docs) Paths() []string { return append([]string(nil), d.paths...) }

// Mount registers the reference page at / and the document at /openapi.yaml.
func (d *Docs) Mount(r chi.Router) {
	r.Get("/", d.HandleDocs)
	r.Get("/openapi.yaml", d.HandleSpec)
}

func (d *Docs) HandleSpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(specYAML)
}

// HandleDocs replaces the site CSP: the Scalar bundle loads from its CDN and
// injects inline styles.
func (d *Docs) HandleDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Security-Policy",
		"default-src 'self'; "+
			"script-src 'self' "+scalarCDN+" 'unsafe-inline'; "+
			"style-src 'self' "+scalarCDN+" 'unsafe-inline'; "+
			"font-src 'self' "+scalarCDN+" data:; "+
			"img-src 'self' data:; connect-src 'self'; frame-ancestors 'self';")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(d.page)
}

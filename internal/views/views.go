// Package views renders the catalog pages from embedded templates
package views

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/KirkDiggler/pokedex/internal/errors"
)

// Page template names
const (
	PageLanding = "landing"
	PageList    = "list"
	PageDetail  = "detail"
	PageError   = "error"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"join": strings.Join,
	"nonempty": func(values []string) []string {
		out := make([]string, 0, len(values))
		for _, v := range values {
			if v != "" {
				out = append(out, v)
			}
		}
		return out
	},
}

// Renderer executes the page templates. It is safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page with the shared layout and card templates
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}

	for _, page := range []string{PageLanding, PageList, PageDetail, PageError} {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/card.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to parse %s template", page)
		}
		r.pages[page] = tmpl
	}

	return r, nil
}

// Render writes page to w. On failure w may hold partial output.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return errors.Internalf("unknown page %q", page)
	}

	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return errors.WrapWithCodef(err, errors.CodeInternal, "failed to render %s", page)
	}
	return nil
}

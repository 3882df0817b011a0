// Package view renders the site pages from embedded html/template files.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = []string{"home", "about", "services", "pricing", "contact"}

// Renderer implements echo.Renderer. Each page is parsed together with the shared
// layout and rendered through the "layout" template.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"lower":  strings.ToLower,
		"stars":  func(n int) []struct{} { return make([]struct{}, clampRating(n)) },
		"inc":    func(i int) int { return i + 1 },
		"hasErr": func(errs map[string]string, field string) bool { _, ok := errs[field]; return ok },
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page, err)
		}
		r.templates[page] = tmpl
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

func clampRating(n int) int {
	if n < 0 {
		return 0
	}
	if n > 5 {
		return 5
	}
	return n
}

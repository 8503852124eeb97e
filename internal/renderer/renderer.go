// Package renderer implements echo.Renderer over pre-parsed html/template
// documents.
package renderer

import (
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// TemplateRenderer implements echo.Renderer
type TemplateRenderer struct {
	Templates map[string]*template.Template
}

// New creates a new TemplateRenderer with pre-parsed templates
func New() *TemplateRenderer {
	r := &TemplateRenderer{
		Templates: make(map[string]*template.Template),
	}
	r.parseTemplates()
	return r
}

func (t *TemplateRenderer) parseTemplates() {
	// Pages render inside the base layout.
	parse := func(name, pageFile string) {
		t.Templates[name] = template.Must(template.ParseFiles(
			"views/layouts/base.html",
			"views/pages/"+pageFile,
		))
	}

	parse("buckets", "buckets.html")
	parse("browser", "browser.html")

	// Partials (HTMX fragments)
	t.Templates["share_link"] = template.Must(template.ParseFiles("views/partials/share_link.html"))
	t.Templates["folder_create_modal"] = template.Must(template.ParseFiles("views/partials/folder_create_modal.html"))
}

// selfExecutingTemplates lists templates that execute their own named block instead of "base"
var selfExecutingTemplates = map[string]bool{
	"share_link":          true,
	"folder_create_modal": true,
}

// Render renders a template document
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := t.Templates[name]
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Template not found: "+name)
	}

	// Templates that define their own named block execute that block directly
	if selfExecutingTemplates[name] {
		return tmpl.ExecuteTemplate(w, name, data)
	}
	// All other templates (pages with layout) execute the "base" block
	return tmpl.ExecuteTemplate(w, "base", data)
}

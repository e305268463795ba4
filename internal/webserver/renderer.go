package webserver

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageNames = []string{"index", "register", "login", "cart", "orders", "admin"}

// TemplateRenderer serves the embedded storefront pages. Each page is a clone
// of the shared layout with its own content block.
type TemplateRenderer struct {
	pages map[string]*template.Template
}

func NewTemplateRenderer() *TemplateRenderer {
	layout := template.Must(template.ParseFS(templatesFS, "templates/layout.html"))
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		clone := template.Must(layout.Clone())
		pages[name] = template.Must(clone.ParseFS(templatesFS, "templates/"+name+".html"))
	}
	return &TemplateRenderer{pages: pages}
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	page, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template: %s", name)
	}
	return page.ExecuteTemplate(w, "layout", data)
}

// render executes a page with the fields every template expects on top of
// the handler's own data.
func (s *WebServer) render(c echo.Context, name string, data map[string]interface{}) error {
	if data == nil {
		data = map[string]interface{}{}
	}
	if _, ok := data["User"]; !ok {
		data["User"] = s.currentUser(c)
	}
	data["Flashes"] = s.popFlashes(c)
	return c.Render(http.StatusOK, name, data)
}

package echoconsole

import (
	"embed"
	"html/template"
	"io"
	"path"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// pages render inside the layout; each gets its own set so their "content" blocks do not clash.
var pageTemplates = []string{"home", "list", "form", "login", "error"}

type renderer struct {
	sets map[string]*template.Template
}

var _ echo.Renderer = (*renderer)(nil)

func newRenderer() (*renderer, error) {
	funcs := template.FuncMap{
		"errorFor": func(errs map[string]string, name string) string { return errs[name] },
	}
	r := &renderer{sets: make(map[string]*template.Template, len(pageTemplates))}
	for _, name := range pageTemplates {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.gohtml",
			"templates/table.gohtml",
			path.Join("templates", name+".gohtml"),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing template %q", name)
		}
		r.sets[name] = tmpl
	}
	return r, nil
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.sets[name]
	if !ok {
		return errors.Errorf("unknown template %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

package html

import (
	"html/template"
	"io"
	"io/fs"
	"sync"

	"github.com/Masterminds/sprig/v3"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PageRenderer renders pages for echo. With reload enabled templates are parsed again on each call.
type PageRenderer struct {
	assets fs.FS
	reload bool

	mtx  sync.RWMutex
	tmpl *template.Template
}

func NewPageRenderer(assets fs.FS, reload bool) (*PageRenderer, error) {
	tmpl, err := parseTemplates(assets)
	if err != nil {
		return nil, err
	}
	return &PageRenderer{
		assets: assets,
		reload: reload,
		tmpl:   tmpl,
	}, nil
}

func (r *PageRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	if r.reload {
		tmpl, err := parseTemplates(r.assets)
		if err != nil {
			return errors.Wrap(err, "failed to reload templates")
		}
		r.mtx.Lock()
		r.tmpl = tmpl
		r.mtx.Unlock()
	}

	r.mtx.RLock()
	tmpl := r.tmpl
	r.mtx.RUnlock()
	if tmpl.Lookup(name) == nil {
		return errors.Errorf("template %s not found", name)
	}
	return tmpl.ExecuteTemplate(w, name, data)
}

func parseTemplates(assets fs.FS) (*template.Template, error) {
	tmpl, err := template.New("pages").
		Funcs(sprig.HtmlFuncMap()).
		ParseFS(assets, templatesGlob)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}
	return tmpl, nil
}

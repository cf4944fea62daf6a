package components

import (
	"attorney_site_go/middleware"
	"attorney_site_go/services/i18n"
	"context"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/a-h/templ"
)

// Source is a set of template files inside an embedded file system
type Source struct {
	FS       fs.FS
	Patterns []string
}

// Set is a parsed group of html/templates that renders as templ components.
// Request-scoped helpers (t, lang, nonce, asset) are bound per render.
type Set struct {
	base *template.Template
}

// MustParse parses every source into one template set
func MustParse(sources ...Source) *Set {
	base := template.New("").Funcs(baseFuncs(context.Background()))
	for _, src := range sources {
		base = template.Must(base.ParseFS(src.FS, src.Patterns...))
	}
	return &Set{base: base}
}

// Component renders the named template with data
func (s *Set) Component(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tmpl, err := s.base.Clone()
		if err != nil {
			return fmt.Errorf("failed to clone templates: %w", err)
		}
		if err := tmpl.Funcs(baseFuncs(ctx)).ExecuteTemplate(w, name, data); err != nil {
			return fmt.Errorf("failed to render %s: %w", name, err)
		}
		return nil
	})
}

// Lookup reports whether the set defines name
func (s *Set) Lookup(name string) bool {
	return s.base.Lookup(name) != nil
}

func baseFuncs(ctx context.Context) template.FuncMap {
	return template.FuncMap{
		"t": func(key string, pairs ...any) string {
			return i18n.T(ctx, key, argsFromPairs(pairs))
		},
		"lang": func() string {
			return i18n.GetLocale(ctx)
		},
		"nonce": func() string {
			return middleware.GetNonce(ctx)
		},
		"asset": func(path string) string {
			return "/" + path + "?v=" + middleware.GetAssetVersion(ctx, path)
		},
		"json": JSON,
		"dict": dict,
	}
}

// argsFromPairs turns "name", value, ... into translation arguments
func argsFromPairs(pairs []any) map[string]interface{} {
	args := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if key, ok := pairs[i].(string); ok {
			args[key] = pairs[i+1]
		}
	}
	return args
}

// dict builds a map for passing several values to a nested template
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict needs an even number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

package gotemplate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	json "github.com/goccy/go-json"

	"github.com/goliatone/go-formwizard/pkg/render/template"
)

// Extension is appended to template names that lack it.
const Extension = ".tpl"

// Option configures the engine before construction.
type Option func(*Engine)

// WithFS loads templates from files, typically an embedded bundle.
func WithFS(files fs.FS) Option {
	return func(e *Engine) {
		e.files = files
	}
}

// WithGlobals seeds values visible to every template.
func WithGlobals(globals map[string]any) Option {
	return func(e *Engine) {
		for key, value := range globals {
			e.globals[key] = value
		}
	}
}

// Engine runs pongo2 templates read from an fs.FS. Compiled templates are
// cached by name.
type Engine struct {
	mu       sync.RWMutex
	files    fs.FS
	globals  pongo2.Context
	set      *pongo2.TemplateSet
	compiled map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an Engine. WithFS is required.
func New(options ...Option) (*Engine, error) {
	e := &Engine{
		globals:  pongo2.Context{},
		compiled: make(map[string]*pongo2.Template),
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	if e.files == nil {
		return nil, errors.New("gotemplate: template fs required")
	}

	e.set = pongo2.NewSet("formwizard", pongo2.NewFSLoader(e.files))
	e.set.Globals = e.globals
	registerFilters()
	return e, nil
}

// RenderTemplate executes the named template.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}
	tmpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}
	return e.execute(tmpl, data, name, out)
}

// RenderString compiles and executes inline template source.
func (e *Engine) RenderString(source string, data any, out ...io.Writer) (string, error) {
	tmpl, err := e.set.FromString(source)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse inline template: %w", err)
	}
	return e.execute(tmpl, data, "inline template", out)
}

// RegisterFilter exposes fn as a pongo2 filter. pongo2 filters are global to
// the process, so a name can only be taken once.
func (e *Engine) RegisterFilter(name string, fn func(input, param any) (any, error)) error {
	if name == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("gotemplate: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, func(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		result, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	})
}

// GlobalContext merges data into the globals every template sees.
func (e *Engine) GlobalContext(data any) error {
	ctx, err := toContext(data)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.globals.Update(ctx)
	e.mu.Unlock()
	return nil
}

func (e *Engine) lookup(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.compiled[name]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.compiled[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load %q: %w", name, err)
	}
	e.compiled[name] = tmpl
	return tmpl, nil
}

func (e *Engine) execute(tmpl *pongo2.Template, data any, name string, out []io.Writer) (string, error) {
	ctx, err := toContext(data)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	e.mu.RLock()
	err = tmpl.ExecuteWriter(ctx, &buf)
	e.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute %s: %w", name, err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

// toContext turns view data into a pongo2 context. Top-level map entries are
// kept as they are unless they are structs or typed collections, which go
// through JSON so templates address them by their json names.
func toContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return normalize(v)
	case map[string]any:
		return normalize(v)
	}

	decoded, err := viaJSON(data)
	if err != nil {
		return nil, err
	}
	m, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("gotemplate: view data %T is not an object", data)
	}
	return pongo2.Context(m), nil
}

func normalize(in map[string]any) (pongo2.Context, error) {
	out := make(pongo2.Context, len(in))
	for key, value := range in {
		switch value.(type) {
		case nil, string, bool, int, int64, float64, []string, map[string]string, []any, map[string]any:
			out[key] = value
		default:
			decoded, err := viaJSON(value)
			if err != nil {
				return nil, fmt.Errorf("gotemplate: convert %q: %w", key, err)
			}
			out[key] = decoded
		}
	}
	return out, nil
}

// viaJSON decodes numbers as json.Number so integers print without a
// fractional part.
func viaJSON(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func registerFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", func(in, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsValue(strings.TrimSpace(in.String())), nil
		})
	}
	if !pongo2.FilterExists("pageid") {
		_ = pongo2.RegisterFilter("pageid", filterPageID)
	}
}

// filterPageID renders the element id of a 1-based page index.
func filterPageID(in, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsInteger() {
		return pongo2.AsValue("page-" + strconv.Itoa(in.Integer())), nil
	}
	index, err := strconv.Atoi(strings.TrimSpace(in.String()))
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:pageid", OrigError: fmt.Errorf("page index %q is not a number", in.String())}
	}
	return pongo2.AsValue("page-" + strconv.Itoa(index)), nil
}

package vanilla

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-formwizard/pkg/catalog"
	"github.com/goliatone/go-formwizard/pkg/render"
	rendertemplate "github.com/goliatone/go-formwizard/pkg/render/template"
	gotemplate "github.com/goliatone/go-formwizard/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formwizard/pkg/renderers/vanilla/components"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	components       *components.Registry
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithComponents replaces the control registry.
func WithComponents(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.components = registry
		}
	}
}

// Renderer emits the complete multi-page form as a single HTML document.
// Every page is rendered up front; only page 1 starts visible.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	components *components.Registry
	stylesheet string
	runtime    string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.components == nil {
		cfg.components = components.NewDefaultRegistry()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	stylesheet, err := readAsset(StylesheetName)
	if err != nil {
		return nil, err
	}
	runtime, err := readAsset(RuntimeScriptName)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		templates:  renderer,
		components: cfg.components,
		stylesheet: stylesheet,
		runtime:    runtime,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

type pageView struct {
	Index       int         `json:"index"`
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Visible     bool        `json:"visible"`
	Fields      []fieldView `json:"fields"`
}

type fieldView struct {
	components.Field
	Control string `json:"control"`
}

type formView struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Pages       []pageView `json:"pages"`
}

type themeView struct {
	CSSVars    string `json:"css_vars,omitempty"`
	Stylesheet string `json:"stylesheet,omitempty"`
	Logo       string `json:"logo,omitempty"`
}

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, cat *catalog.Catalog, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if cat == nil || cat.Len() == 0 {
		return nil, fmt.Errorf("vanilla renderer: catalog is empty")
	}

	var partials map[string]string
	if options.Theme != nil {
		partials = options.Theme.Partials
	}

	form := formView{Pages: make([]pageView, 0, cat.Len())}
	for idx, page := range cat.Pages() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		view := pageView{
			Index:       idx + 1,
			ID:          page.ID,
			Title:       page.Title,
			Description: page.Description,
			Visible:     idx == 0,
		}
		for _, spec := range page.Fields {
			field := components.Field{
				Name:        spec.Name,
				Label:       spec.Label,
				Kind:        string(spec.Kind),
				Required:    spec.Required,
				Pattern:     spec.Pattern,
				MaxLength:   spec.MaxLength,
				Options:     spec.Options,
				Placeholder: spec.Placeholder,
				ControlID:   controlID(spec.Name, spec.Label),
			}
			control, err := r.renderControl(field, options.Values[spec.Label], partials)
			if err != nil {
				return nil, err
			}
			view.Fields = append(view.Fields, fieldView{Field: field, Control: control})
		}
		form.Pages = append(form.Pages, view)
	}
	form.Title = form.Pages[0].Title
	form.Description = form.Pages[0].Description

	result, err := r.templates.RenderTemplate("templates/form.tpl", map[string]any{
		"form":       form,
		"classes":    defaultChromeClasses(),
		"policy":     options.Policy.String(),
		"endpoints":  options.ResolvedEndpoints(),
		"theme":      buildThemeView(options),
		"stylesheet": r.stylesheet,
		"runtime":    r.runtime,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) renderControl(field components.Field, value string, partials map[string]string) (string, error) {
	var buf bytes.Buffer
	err := r.components.Render(&buf, field, components.ComponentData{
		Template:      r.templates,
		Value:         value,
		ThemePartials: partials,
	})
	if err != nil {
		return "", fmt.Errorf("vanilla renderer: field %q: %w", field.Label, err)
	}
	return buf.String(), nil
}

func buildThemeView(options render.RenderOptions) themeView {
	cfg := options.Theme
	if cfg == nil {
		return themeView{}
	}
	view := themeView{CSSVars: render.CSSVarsStyle(cfg)}
	if cfg.AssetURL != nil {
		view.Stylesheet = cfg.AssetURL(render.AssetStylesheet)
		view.Logo = cfg.AssetURL(render.AssetLogo)
	}
	return view
}

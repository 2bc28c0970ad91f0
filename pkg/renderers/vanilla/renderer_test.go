package vanilla

import (
	"bytes"
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-formwizard/pkg/catalog"
	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/render"
	"github.com/goliatone/go-formwizard/pkg/renderers/vanilla/components"
	"github.com/goliatone/go-formwizard/pkg/validation"
)

func renderDefault(t *testing.T, options render.RenderOptions) string {
	t.Helper()

	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), catalog.Default(), options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderer_DocumentContract(t *testing.T) {
	html := renderDefault(t, render.RenderOptions{})

	for _, want := range []string{
		`<h1 id="title">Create a Google Account</h1>`,
		`<p id="desc">Enter a name</p>`,
		`<div id="content">`,
		`<section id="page-1" class="formwizard-page" data-page-id="name">`,
		`<section id="page-2" class="formwizard-page" data-page-id="birthdaygender" hidden>`,
		`<div id="warning" class="formwizard-warning" role="alert" hidden><span id="warning-text"></span></div>`,
		`<div id="error" class="formwizard-error" role="alert" hidden></div>`,
		`<button id="next" type="button">Next</button>`,
		`data-policy="required"`,
		`data-next="/api/next"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered form missing %q", want)
		}
	}
}

func TestRenderer_FieldConstraints(t *testing.T) {
	html := renderDefault(t, render.RenderOptions{})

	for _, want := range []string{
		`<input id="fw-firstname" name="firstName" type="text" aria-label="first name" required aria-required="true" maxlength="50" value="">`,
		`<input id="fw-lastname" name="lastName" type="text" aria-label="last name (optional)" maxlength="50" value="">`,
		`aria-label="day" required aria-required="true" pattern="[0-9]{1,2}" maxlength="2"`,
		`<select id="fw-month" name="month" aria-label="month" required aria-required="true">`,
		`<option value="December">December</option>`,
		`<label for="fw-firstname">First name</label>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered form missing %q", want)
		}
	}
}

func TestRenderer_PrefillsAndEscapesValues(t *testing.T) {
	html := renderDefault(t, render.RenderOptions{
		Values: map[string]string{
			"first name": `Ada <b>`,
			"month":      "May",
		},
		Policy: validation.PolicyStrict,
	})

	if !strings.Contains(html, `value="Ada &lt;b&gt;"`) {
		t.Errorf("value not escaped")
	}
	if !strings.Contains(html, `<option value="May" selected>May</option>`) {
		t.Errorf("select value not preselected")
	}
	if !strings.Contains(html, `data-policy="strict"`) {
		t.Errorf("policy not exposed to runtime")
	}
}

func TestRenderer_ThemeTokens(t *testing.T) {
	selection, err := render.NewStaticSelector(render.DefaultManifest()).Select("", "dark")
	if err != nil {
		t.Fatalf("select theme: %v", err)
	}
	html := renderDefault(t, render.RenderOptions{Theme: render.RendererConfig(selection)})

	if !strings.Contains(html, `<style id="fw-theme">`) {
		t.Fatalf("theme style block missing")
	}
	if !strings.Contains(html, "--color-primary: #8ab4f8;") {
		t.Errorf("dark variant token not applied")
	}
}

func TestRenderer_EmbedsRuntime(t *testing.T) {
	html := renderDefault(t, render.RenderOptions{})
	if !strings.Contains(html, `history.pushState({ page: view.page }, "", view.address);`) {
		t.Errorf("runtime script not inlined")
	}

	data, err := fs.ReadFile(AssetsFS(), StylesheetName)
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}
	if !strings.Contains(string(data), ".formwizard-form") {
		t.Errorf("stylesheet missing form class")
	}
}

func TestControlID(t *testing.T) {
	cases := map[[2]string]string{
		{"firstName", ""}:           "fw-firstname",
		{"", "last name (optional)"}: "fw-last-name-optional",
		{"address_line2", ""}:       "fw-address-line2",
	}
	for in, want := range cases {
		if got := controlID(in[0], in[1]); got != want {
			t.Errorf("controlID(%q, %q) = %q, want %q", in[0], in[1], got, want)
		}
	}
}

func TestRenderer_CustomControl(t *testing.T) {
	registry := components.NewDefaultRegistry()
	err := registry.Override(model.FieldKindSelect, func(buf *bytes.Buffer, field components.Field, _ components.ComponentData) error {
		buf.WriteString(`<output data-label="` + field.Label + `"></output>`)
		return nil
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := New(WithComponents(registry))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), catalog.Default(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `<output data-label="month"></output>`) {
		t.Fatalf("custom select control not used")
	}
	if !strings.Contains(html, `id="fw-firstname"`) {
		t.Fatalf("text inputs should keep the default control")
	}
}

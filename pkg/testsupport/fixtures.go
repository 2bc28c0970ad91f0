// Package testsupport holds fixtures shared by package tests.
package testsupport

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/goliatone/go-formwizard/pkg/document"
	"github.com/goliatone/go-formwizard/pkg/model"
)

// LinearPages builds n pages ("step1".."stepN") holding one required field
// each, labelled "answer <i>".
func LinearPages(n int) []model.Page {
	pages := make([]model.Page, 0, n)
	for i := 1; i <= n; i++ {
		pages = append(pages, model.Page{
			PageDescriptor: model.PageDescriptor{
				ID:          fmt.Sprintf("step%d", i),
				Title:       fmt.Sprintf("Step %d", i),
				Description: fmt.Sprintf("Fill step %d", i),
			},
			Fields: []model.FieldSpec{{
				Name:     fmt.Sprintf("answer%d", i),
				Label:    fmt.Sprintf("answer %d", i),
				Required: true,
			}},
		})
	}
	return pages
}

// SignupAnswers returns, per page index, values that satisfy every field of
// the built-in sign-up catalog.
func SignupAnswers() map[int]map[string]string {
	return map[int]map[string]string{
		1: {"first name": "Ada", "last name (optional)": "Lovelace"},
		2: {"month": "December", "day": "10", "year": "1815", "gender": "Female"},
	}
}

// FillPage writes values into the inputs of the page at index.
func FillPage(t testing.TB, doc *document.Memory, index int, values map[string]string) {
	t.Helper()
	for label, value := range values {
		if err := doc.SetValue(document.PageID(index), label, value); err != nil {
			t.Fatalf("fill %q on page %d: %v", label, index, err)
		}
	}
}

// MustReadGoldenString reads a golden file.
func MustReadGoldenString(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return string(data)
}

// CaptureTemplateOutput runs render against a buffer and returns both the
// returned string and what was written.
func CaptureTemplateOutput(t testing.TB, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()
	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}

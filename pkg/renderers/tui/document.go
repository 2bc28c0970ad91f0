package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-formwizard/pkg/document"
	"github.com/goliatone/go-formwizard/pkg/model"
)

// Document is the terminal rendering surface. Element state lives in an
// in-memory tree; View draws whatever is currently visible.
type Document struct {
	*document.Memory
	pages  []model.Page
	styles Styles
}

var _ document.Document = (*Document)(nil)

// NewDocument builds the element tree for pages.
func NewDocument(pages []model.Page, styles Styles) *Document {
	return &Document{
		Memory: document.NewMemory(pages),
		pages:  pages,
		styles: styles,
	}
}

// View renders the visible chrome and page.
func (d *Document) View() string {
	var blocks []string

	if d.Visible(document.IDError) {
		blocks = append(blocks, d.styles.Error.Render(d.Text(document.IDError)))
		return d.styles.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
	}

	blocks = append(blocks, d.styles.Title.Render(d.Text(document.IDTitle)))
	if desc := d.Text(document.IDDescription); desc != "" {
		blocks = append(blocks, d.styles.Description.Render(desc))
	}

	if d.Visible(document.IDContent) {
		for idx, page := range d.pages {
			if !d.Visible(document.PageID(idx + 1)) {
				continue
			}
			blocks = append(blocks, "")
			for _, field := range page.Fields {
				blocks = append(blocks, d.fieldLine(field))
			}
		}
	}

	if d.Visible(document.IDWarning) {
		blocks = append(blocks, "", d.styles.Warning.Render("! "+d.Text(document.IDWarningText)))
	}
	return d.styles.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

func (d *Document) fieldLine(field model.FieldSpec) string {
	label := field.Label
	if field.Required {
		label += " *"
	}
	value := d.Value(field.Label)
	if strings.TrimSpace(value) == "" {
		value = "-"
	}
	style := d.styles.Value
	if d.Invalid(field.Label) {
		style = d.styles.Invalid
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, d.styles.Label.Render(label+":"), " ", style.Render(value))
}

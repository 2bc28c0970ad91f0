package model

// FieldKind is the simplified enum for the input controls a page can carry.
type FieldKind string

const (
	FieldKindText   FieldKind = "text"
	FieldKindSelect FieldKind = "select"
	FieldKindDate   FieldKind = "date"
	FieldKindNumber FieldKind = "number"
)

// PageDescriptor is the static metadata for one step of the form. The ID
// doubles as the address token pushed into history ("?<id>&page=<n>").
type PageDescriptor struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// FieldSpec describes an input element inside a page. Pattern follows the
// HTML pattern attribute semantics (anchored, whole-value match) and a zero
// MaxLength disables the length check.
type FieldSpec struct {
	Name        string    `json:"name" yaml:"name"`
	Label       string    `json:"label" yaml:"label"`
	Kind        FieldKind `json:"kind,omitempty" yaml:"kind,omitempty"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Pattern     string    `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MaxLength   int       `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Options     []string  `json:"options,omitempty" yaml:"options,omitempty"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// Page couples a descriptor with the fields rendered inside its element.
type Page struct {
	PageDescriptor `yaml:",inline"`
	Fields         []FieldSpec `json:"fields,omitempty" yaml:"fields,omitempty"`
}

package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassForm    ChromeClass = "formwizard-form"
	ClassHeader  ChromeClass = "formwizard-header"
	ClassLogo    ChromeClass = "formwizard-logo"
	ClassSection ChromeClass = "formwizard-page"
	ClassField   ChromeClass = "formwizard-field"
	ClassWarning ChromeClass = "formwizard-warning"
	ClassError   ChromeClass = "formwizard-error"
	ClassActions ChromeClass = "formwizard-actions"
)

type chromeClasses struct {
	Form    string `json:"form"`
	Header  string `json:"header"`
	Logo    string `json:"logo"`
	Section string `json:"section"`
	Field   string `json:"field"`
	Warning string `json:"warning"`
	Error   string `json:"error"`
	Actions string `json:"actions"`
}

func defaultChromeClasses() chromeClasses {
	return chromeClasses{
		Form:    string(ClassForm),
		Header:  string(ClassHeader),
		Logo:    string(ClassLogo),
		Section: string(ClassSection),
		Field:   string(ClassField),
		Warning: string(ClassWarning),
		Error:   string(ClassError),
		Actions: string(ClassActions),
	}
}

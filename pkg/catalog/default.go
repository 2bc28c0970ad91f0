package catalog

import "github.com/goliatone/go-formwizard/pkg/model"

const (
	// PageName identifies the first page collecting the account name.
	PageName = "name"
	// PageBirthdayGender identifies the second page.
	PageBirthdayGender = "birthdaygender"
)

var months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Default returns the built-in account sign-up catalog.
func Default() *Catalog {
	return MustNew(
		model.Page{
			PageDescriptor: model.PageDescriptor{
				ID:          PageName,
				Title:       "Create a Google Account",
				Description: "Enter a name",
			},
			Fields: []model.FieldSpec{
				{Name: "firstName", Label: "first name", Required: true, MaxLength: 50},
				{Name: "lastName", Label: "last name (optional)", MaxLength: 50},
			},
		},
		model.Page{
			PageDescriptor: model.PageDescriptor{
				ID:          PageBirthdayGender,
				Title:       "Basic information",
				Description: "Enter a birthday and gender",
			},
			Fields: []model.FieldSpec{
				{Name: "month", Label: "month", Kind: model.FieldKindSelect, Required: true, Options: months},
				{Name: "day", Label: "day", Required: true, Pattern: "[0-9]{1,2}", MaxLength: 2, Placeholder: "Day"},
				{Name: "year", Label: "year", Required: true, Pattern: "[0-9]{1,4}", MaxLength: 4, Placeholder: "Year"},
				{Name: "gender", Label: "gender", Kind: model.FieldKindSelect, Required: true, Options: []string{"Female", "Male", "Rather not say", "Custom"}},
			},
		},
	)
}

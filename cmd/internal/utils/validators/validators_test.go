package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	validate := validator.New()
	if err := validate.RegisterValidation("notblank", NotBlank); err != nil {
		t.Fatalf("register notblank: %v", err)
	}
	if err := validate.RegisterValidation("nodupes", NoDupes); err != nil {
		t.Fatalf("register nodupes: %v", err)
	}
	return validate
}

func TestNotBlank(t *testing.T) {
	validate := newValidate(t)
	type form struct {
		Name string `validate:"notblank"`
	}

	cases := []struct {
		name  string
		value string
		valid bool
	}{
		{"plain value", "Ann", true},
		{"inner whitespace kept", "Ann Lee", true},
		{"empty", "", false},
		{"spaces only", "   ", false},
		{"tabs and newlines", "\t\n", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(form{Name: tc.value})
			if (err == nil) != tc.valid {
				t.Fatalf("value %q: err=%v, want valid=%t", tc.value, err, tc.valid)
			}
		})
	}
}

func TestNoDupes(t *testing.T) {
	validate := newValidate(t)
	type form struct {
		Services []string `validate:"nodupes"`
	}

	cases := []struct {
		name     string
		services []string
		valid    bool
	}{
		{"empty list", nil, true},
		{"distinct", []string{"Haircut", "Shave"}, true},
		{"repeat", []string{"Haircut", "Haircut"}, false},
		{"case sensitive", []string{"Haircut", "haircut"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(form{Services: tc.services})
			if (err == nil) != tc.valid {
				t.Fatalf("services %v: err=%v, want valid=%t", tc.services, err, tc.valid)
			}
		})
	}
}

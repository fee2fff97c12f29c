// Package validation provides parameter and settings validation.
//
// It supports both struct tag validation (using the validator library) for
// configuration structs and programmatic validation with error collection for
// endpoint parameter checks run right before a request is fired.
//
// # Struct Tag Validation
//
//	type Settings struct {
//	    Username    string `validate:"required_with=PasswordSHA"`
//	    PasswordSHA string `validate:"required_with=Username"`
//	}
//	err := validation.Validate(settings)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("q", query).OneOf("sort", sort, []string{"count", "name"})
//	if err := v.Validate(); err != nil { ... }
package validation

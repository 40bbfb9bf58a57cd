package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bootcamp-api/models"
)

// JSON names of the request fields checked for presence.
const (
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldTitle       = "title"
	FieldCue         = "cue"
	FieldDescription = "description"
	FieldBootcampID  = "bootcampId"
	FieldUserID      = "userId"
)

// RequestValidator checks that every required field of an API request body
// is present. A string is present when non-empty, an id when non-zero.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate returns a [*ValidationError] naming every missing field. When
// fields are given only those are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var present []field

	switch value := obj.(type) {
	case models.SignUpRequest:
		present = signUpFields(value)
	case *models.SignUpRequest:
		present = signUpFields(*value)

	case models.SignInRequest:
		present = signInFields(value)
	case *models.SignInRequest:
		present = signInFields(*value)

	case models.UpdateUserRequest:
		present = updateUserFields(value)
	case *models.UpdateUserRequest:
		present = updateUserFields(*value)

	case models.CreateBootcampRequest:
		present = createBootcampFields(value)
	case *models.CreateBootcampRequest:
		present = createBootcampFields(*value)

	case models.AddUserRequest:
		present = addUserFields(value)
	case *models.AddUserRequest:
		present = addUserFields(*value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	return checkPresence(present, fields...)
}

type field struct {
	name    string
	present bool
}

func signUpFields(r models.SignUpRequest) []field {
	return []field{
		{FieldFirstName, r.FirstName != ""},
		{FieldLastName, r.LastName != ""},
		{FieldEmail, r.Email != ""},
		{FieldPassword, r.Password != ""},
	}
}

func signInFields(r models.SignInRequest) []field {
	return []field{
		{FieldEmail, r.Email != ""},
		{FieldPassword, r.Password != ""},
	}
}

func updateUserFields(r models.UpdateUserRequest) []field {
	return []field{
		{FieldFirstName, r.FirstName != ""},
		{FieldLastName, r.LastName != ""},
	}
}

func createBootcampFields(r models.CreateBootcampRequest) []field {
	return []field{
		{FieldTitle, r.Title != ""},
		{FieldCue, r.Cue != ""},
		{FieldDescription, r.Description != ""},
	}
}

func addUserFields(r models.AddUserRequest) []field {
	return []field{
		{FieldBootcampID, r.BootcampID != 0},
		{FieldUserID, r.UserID != 0},
	}
}

func checkPresence(all []field, only ...string) error {
	if len(only) > 0 {
		selected := make([]field, 0, len(only))
		for _, name := range only {
			f, ok := lookup(all, name)
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, name)
			}
			selected = append(selected, f)
		}
		all = selected
	}

	var missing []string
	for _, f := range all {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}

	return nil
}

func lookup(all []field, name string) (field, bool) {
	for _, f := range all {
		if f.name == name {
			return f, true
		}
	}
	return field{}, false
}

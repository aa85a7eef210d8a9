package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// ErrDetails maps a single failing field to its human-readable message.
type ErrDetails map[string]interface{}

// ErrorToString renders one field violation the way clients expect to read it.
func ErrorToString(e validator.FieldError) ErrDetails {
	err := make(map[string]interface{})

	switch e.Tag() {
	case "required":
		err[e.Field()] = "this field is required"
		return err
	case "max":
		err[e.Field()] = fmt.Sprintf("this field cannot be longer than %s", e.Param())
		return err
	case "min":
		err[e.Field()] = fmt.Sprintf("this field must be longer than %s", e.Param())
		return err
	case "email":
		err[e.Field()] = "invalid email format"
		return err
	case "len":
		err[e.Field()] = fmt.Sprintf("this field must be %s characters long", e.Param())
		return err
	case "numeric":
		err[e.Field()] = "this field must contain digits only"
		return err
	case "gt":
		err[e.Field()] = fmt.Sprintf("this field must be greater than %s", e.Param())
		return err
	case "alphanum":
		err[e.Field()] = "this field must be alphanumeric"
		return err
	case "datetime":
		err[e.Field()] = fmt.Sprintf("wrong date entered (%v), use the format %s", e.Value(), e.Param())
		return err
	case "ifsc":
		err[e.Field()] = "invalid bank code format"
		return err
	default:
		err[e.Field()] = fmt.Sprintf("%s is not valid", e.Field())
	}

	return err
}

// ValidationDetails collects every violation, in field order, never stopping
// at the first failure.
func ValidationDetails(v validator.ValidationErrors) []ErrDetails {
	var details []ErrDetails
	for _, err := range v {
		details = append(details, ErrorToString(err))
	}
	return details
}

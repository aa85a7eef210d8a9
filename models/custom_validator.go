package models

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validatorOnce sync.Once
var validate *validator.Validate

// ifscPattern is the fixed bank-code format: four letters, a zero, six
// alphanumerics.
var ifscPattern = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)

func ifsc(fl validator.FieldLevel) bool {
	return ifscPattern.MatchString(fl.Field().String())
}

// Validator returns the shared validator instance. It reads the binding tag
// and reports fields under their JSON names so violation messages line up
// with what clients actually sent.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New()
		validate.SetTagName("binding")

		if err := validate.RegisterValidation("ifsc", ifsc); err != nil {
			log.Fatalf("Unexpected err %v", err)
		}

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

			if name == "-" {
				return ""
			}

			return name
		})
	})
	return validate
}

// ValidateStruct runs the shared validator against obj when it is a struct.
func ValidateStruct(obj interface{}) error {
	if kindOfData(obj) == reflect.Struct {
		if err := Validator().Struct(obj); err != nil {
			return err
		}
	}
	return nil
}

func kindOfData(data interface{}) reflect.Kind {
	value := reflect.ValueOf(data)
	valueType := value.Kind()

	if valueType == reflect.Ptr {
		valueType = value.Elem().Kind()
	}
	return valueType
}

// DefaultValidator plugs the shared validator into gin's binding so that
// ShouldBindJSON applies the same rules and custom tags as direct calls.
type DefaultValidator struct{}

func (v *DefaultValidator) ValidateStruct(obj interface{}) error {
	return ValidateStruct(obj)
}

func (v *DefaultValidator) Engine() interface{} {
	return Validator()
}

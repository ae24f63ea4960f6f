package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var nationalIDPattern = regexp.MustCompile(`^\d{9,11}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("national_id", validateNationalID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateNationalID(fl validator.FieldLevel) bool {
	return nationalIDPattern.MatchString(fl.Field().String())
}

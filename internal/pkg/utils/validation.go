package utils

import (
	"medibook-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	reSpecialChar = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>_\-+=\[\]\\/~` + "`" + `';]`)
	reUppercase   = regexp.MustCompile(`[A-Z]`)
	rePhoneNumber = regexp.MustCompile(`^\+[1-9]\d{9,14}$`)
	reURLParamID  = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("clock", validateClock)
	validate.RegisterValidation("calendar_date", validateCalendarDate)
	validate.RegisterValidation("role", validateRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := reSpecialChar.MatchString(password)
	hasUppercase := reUppercase.MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return rePhoneNumber.MatchString(NormalizePhoneNumber(fl.Field().String()))
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := ParseClock(fl.Field().String())
	return err == nil
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := ParseCalendarDate(fl.Field().String())
	return err == nil
}

func validateRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.RoleAdmin, constvars.RoleDoctor, constvars.RoleUser:
		return true
	}
	return false
}

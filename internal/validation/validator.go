package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"fintrack/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("month_token", validateMonthToken)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("category_name", validateCategoryName)
	_ = v.RegisterValidation("iso_date", validateISODate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateMonthToken validates a "YYYY-MM" month token
func validateMonthToken(fl validator.FieldLevel) bool {
	return models.IsValidMonthToken(fl.Field().String())
}

// validateTransactionType validates that transaction type is one of the allowed types
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(strings.ToLower(fl.Field().String()))
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}

// validateCategoryName validates a category name: printable, no leading or
// trailing whitespace, at most 100 characters
func validateCategoryName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" || len(name) > 100 {
		return false
	}
	if strings.TrimSpace(name) != name {
		return false
	}

	matched, _ := regexp.MatchString(`^[\p{L}\p{N}][\p{L}\p{N} &/_-]*$`, name)
	return matched
}

// validateISODate validates a "YYYY-MM-DD" date string
func validateISODate(fl validator.FieldLevel) bool {
	date := fl.Field().String()
	if date == "" {
		return false
	}

	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

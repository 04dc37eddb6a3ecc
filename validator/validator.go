package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
	Value   string `json:"value,omitempty"`
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// New creates a new validator instance
func New() *Validator {
	v := validator.New()

	// Register custom tag name function to use JSON tags
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validators
	v.RegisterValidation("condition", validateCondition)
	v.RegisterValidation("activitytype", validateActivityType)
	v.RegisterValidation("activitystatus", validateActivityStatus)
	v.RegisterValidation("priority", validatePriority)
	v.RegisterValidation("dateformat", validateDateFormat)

	return &Validator{validate: v}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	// Convert validation errors to our custom format
	var validationErrs ValidationErrors
	for _, err := range err.(validator.ValidationErrors) {
		validationErrs = append(validationErrs, ValidationError{
			Field:   err.Field(),
			Message: msgForTag(err),
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
		})
	}

	return validationErrs
}

// msgForTag returns a human-readable error message for a validation tag
func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "condition":
		return fmt.Sprintf("%s must be one of: healthy, warning, critical", field)
	case "activitytype":
		return fmt.Sprintf("%s must be one of: plant, water, fertilize, harvest, inspect", field)
	case "activitystatus":
		return fmt.Sprintf("%s must be one of: pending, completed, cancelled", field)
	case "priority":
		return fmt.Sprintf("%s must be one of: low, medium, high", field)
	case "dateformat":
		return fmt.Sprintf("%s must be in YYYY-MM-DD format", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// Custom validators

// validateCondition validates plant condition values
func validateCondition(fl validator.FieldLevel) bool {
	condition := fl.Field().String()
	return condition == "healthy" || condition == "warning" || condition == "critical"
}

// validateActivityType validates crop activity types
func validateActivityType(fl validator.FieldLevel) bool {
	activity := fl.Field().String()
	validTypes := map[string]bool{
		"plant":     true,
		"water":     true,
		"fertilize": true,
		"harvest":   true,
		"inspect":   true,
	}
	return validTypes[activity]
}

// validateActivityStatus validates activity status values
func validateActivityStatus(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	return status == "pending" || status == "completed" || status == "cancelled"
}

// validatePriority validates activity priority values
func validatePriority(fl validator.FieldLevel) bool {
	priority := fl.Field().String()
	return priority == "low" || priority == "medium" || priority == "high"
}

// validateDateFormat validates YYYY-MM-DD format
func validateDateFormat(fl validator.FieldLevel) bool {
	date := fl.Field().String()
	// Match YYYY-MM-DD format
	datePattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	return datePattern.MatchString(date)
}

package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/1Markish/Superheroes/internal/model"
)

var validate = newValidator()

// newValidator reports fields by their JSON names and knows the "strength"
// tag, which accepts exactly the labels model.Strength.IsValid accepts.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("strength", func(fl validator.FieldLevel) bool {
		return model.Strength(fl.Field().String()).IsValid()
	}); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct's validate tags and wraps any failure in
// ErrValidation, naming each field and the rule it broke.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	causes := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			causes = append(causes, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		causes = append(causes, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(causes, "; "))
}

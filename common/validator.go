package common

import (
	"encoding/json"
	"food-storefront/validation"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so they line up with form errors.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateAndDecode decodes a JSON body into payload and checks its
// `validate` struct tags.
func ValidateAndDecode(r *http.Request, payload interface{}) *AppError {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return NewAppError(http.StatusBadRequest, "Invalid request body", nil)
	}

	if err := validate.Struct(payload); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return NewAppError(http.StatusBadRequest, err.Error(), nil)
		}
		fields := validation.Errors{}
		for _, fe := range validationErrors {
			fields.Add(fe.Field(), fe.Error())
		}
		return NewValidationError(fields)
	}

	return nil
}

// DecodeForm decodes a JSON body into form and runs it through the form
// rule table. A non-nil result means the request must not proceed.
func DecodeForm(r *http.Request, form validation.Form) *AppError {
	if err := json.NewDecoder(r.Body).Decode(form); err != nil {
		return NewAppError(http.StatusBadRequest, "Invalid request body", nil)
	}
	return CheckForm(form)
}

// CheckForm runs an already assembled form through the rule table.
func CheckForm(form validation.Form) *AppError {
	if errs := validation.Check(form); !errs.Valid() {
		return NewValidationError(errs)
	}
	return nil
}

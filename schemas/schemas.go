// Package schemas declares the request payloads accepted by the API and
// validates them at the boundary, before any lookup or write happens.
package schemas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"mongochef/errs"
)

// maxBody caps request bodies at 1 MiB.
const maxBody = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Decode reads a JSON body into v. A missing or empty body is InvalidInput
// with the message "No data provided".
func Decode(r *http.Request, v any) error {
	if r.Body == nil {
		return errs.New(errs.CodeInvalidInput, "No data provided")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errs.New(errs.CodeInvalidInput, "No data provided")
		}
		return errs.Wrap(errs.CodeInvalidInput, "Invalid JSON payload", err)
	}
	return nil
}

// Validate checks v against its validate tags and reports the first
// failing field by its JSON path.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errs.Wrap(errs.CodeInvalidInput, "Invalid payload", err)
	}
	fe := fieldErrs[0]
	field := fieldPath(fe)
	return errs.NewWithContext(errs.CodeInvalidInput, describe(field, fe), map[string]any{
		"field": field,
		"tag":   fe.Tag(),
	})
}

// DecodeValid is Decode followed by Validate.
func DecodeValid(r *http.Request, v any) error {
	if err := Decode(r, v); err != nil {
		return err
	}
	return Validate(v)
}

// fieldPath drops the root struct name from the namespace:
// "RecipeRequest.ingredients[0].name" becomes "ingredients[0].name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", field)
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must have at most %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must have at least %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid e-mail address", field)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

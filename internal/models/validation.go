package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON names ("in_stock", "sizes[1]") instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError names the offending field and the constraint it broke.
type ValidationError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ValidationErrors collects every failure found in one record.
type ValidationErrors []*ValidationError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// AsValidationErrors extracts validation failures from err, if any.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var many ValidationErrors
	if errors.As(err, &many) {
		return many, true
	}
	var one *ValidationError
	if errors.As(err, &one) {
		return ValidationErrors{one}, true
	}
	return nil, false
}

// ValidateProductCreate is the relaxed check used on writes: images may be
// arbitrary text.
func ValidateProductCreate(in ProductInput) (Product, error) {
	if err := validateStruct(in); err != nil {
		return Product{}, err
	}
	return in.normalize(), nil
}

// ValidateProduct is the strict check used on reads: every image must be an
// absolute http(s) URL.
func ValidateProduct(in ProductInput) (Product, error) {
	var errs ValidationErrors
	if err := validateStruct(in); err != nil {
		errs, _ = AsValidationErrors(err)
	}
	for i, img := range in.Images {
		if validate.Var(img, "required,http_url") != nil {
			errs = append(errs, &ValidationError{
				Field:      fmt.Sprintf("images[%d]", i),
				Constraint: "http_url",
				Message:    "must be a valid http(s) URL",
			})
		}
	}
	if len(errs) > 0 {
		return Product{}, errs
	}
	return in.normalize(), nil
}

// ProductFromDocument turns a stored document into a Product. The store
// identifier is dropped and the strict schema applies.
func ProductFromDocument(doc bson.M) (Product, error) {
	clean := make(bson.M, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		clean[k] = v
	}

	raw, err := bson.Marshal(clean)
	if err != nil {
		return Product{}, fmt.Errorf("marshal product document: %w", err)
	}

	var in ProductInput
	if err := bson.Unmarshal(raw, &in); err != nil {
		return Product{}, &ValidationError{
			Field:      "document",
			Constraint: "type",
			Message:    err.Error(),
		}
	}
	return ValidateProduct(in)
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, &ValidationError{
			Field:      fe.Field(),
			Constraint: fe.Tag(),
			Message:    constraintMessage(fe),
		})
	}
	return out
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	default:
		return fmt.Sprintf("failed on the '%s' constraint", fe.Tag())
	}
}

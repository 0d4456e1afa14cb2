package utils

import (
	"reflect"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to the echo.Validator interface.
type Validator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *Validator {
	registerNullTypes(v)
	return &Validator{validator: v}
}

func (cv *Validator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// registerNullTypes teaches the validator to look inside null.String et al.
// so `omitempty` fires when the value is absent.
func registerNullTypes(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.String); ok {
			if val.Valid {
				return val.String
			}
		}
		return nil
	}, null.String{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.Int); ok {
			if val.Valid {
				return val.Int
			}
		}
		return nil
	}, null.Int{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.Time); ok {
			if val.Valid {
				return val.Time
			}
		}
		return nil
	}, null.Time{})
}

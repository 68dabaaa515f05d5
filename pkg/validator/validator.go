package validator

import "github.com/go-playground/validator/v10"

// FieldError describe un campo que no pasó validación.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

var validate = validator.New()

// ValidateStruct valida los tags `validate` de un struct y devuelve los campos fallidos.
func ValidateStruct(data interface{}) []FieldError {
	var out []FieldError
	if err := validate.Struct(data); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			out = append(out, FieldError{
				Field: fe.StructNamespace(),
				Tag:   fe.Tag(),
				Param: fe.Param(),
			})
		}
	}
	return out
}

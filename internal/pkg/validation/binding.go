package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs application validation tags on gin's
// binding engine. Must be called once before the router handles requests.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	return v.RegisterValidation("usn", func(fl validator.FieldLevel) bool {
		return IsValidUSN(fl.Field().String())
	})
}

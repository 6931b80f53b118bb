package routes

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/arjun/hostelmate/internal/pkg/validation"
)

// registerCustomValidators adds domain binding rules on top of the built-in
// validator tags. Safe to call more than once.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return validation.IsValidPincode(fl.Field().String())
	})

	_ = v.RegisterValidation("enrollnumber", func(fl validator.FieldLevel) bool {
		return validation.IsValidEnrollNumber(fl.Field().String())
	})
}

package validator

import (
	"github.com/go-playground/validator/v10"

	"freelance-job-tracker/internal/job/model"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	err := validate.RegisterValidation("payment_status", validatePaymentStatus)
	if err != nil {
		return
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	return model.PaymentStatus(fl.Field().String()).Valid()
}

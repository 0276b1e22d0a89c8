package validator

import "github.com/go-playground/validator/v10"

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("radius_m", validateRadiusM)
	validate.RegisterValidation("freq_min", validateFreqMin)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

// Checkpoint radius policy: 10..500 meters.
func validateRadiusM(fl validator.FieldLevel) bool {
	radius := fl.Field().Int()
	return radius >= 10 && radius <= 500
}

func validateFreqMin(fl validator.FieldLevel) bool {
	return fl.Field().Int() > 0
}

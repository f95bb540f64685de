package utils

import (
	"regexp"
	"sync"

	"foodgram/entities"

	"github.com/go-playground/validator/v10"
)

var (
	Validate *validator.Validate
	once     sync.Once

	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
)

func InitValidator() {
	once.Do(func() {
		Validate = validator.New()
		_ = Validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		})
		_ = Validate.RegisterValidation("unit", func(fl validator.FieldLevel) bool {
			_, ok := entities.MeasurementUnits[fl.Field().String()]
			return ok
		})
	})
}

package utils

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/volunteerhub-dev/volunteerhub/internal/types"
)

// RegisterValidators adds the domain tags used in request binding:
// "projecttype" for Online/Onsite/Hybrid and "isodate" for YYYY-MM-DD dates.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)

	if !ok {
		return nil
	}

	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation("projecttype", validProjectType); err != nil {
		return err
	}

	return v.RegisterValidation("isodate", validISODate)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]

	if name == "" || name == "-" {
		return field.Name
	}

	return name
}

func validProjectType(fl validator.FieldLevel) bool {
	_, err := types.ParseProjectType(fl.Field().String())
	return err == nil
}

func validISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(types.DateLayout, fl.Field().String())
	return err == nil
}

// ValidationMessage turns binding failures into a short client-facing message.
func ValidationMessage(err error) string {
	var errs validator.ValidationErrors

	if !errors.As(err, &errs) || len(errs) == 0 {
		return "Invalid request"
	}

	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min", "max":
		return fe.Field() + " is out of range"
	case "projecttype":
		return fe.Field() + " must be one of Online, Onsite, Hybrid"
	case "isodate":
		return fe.Field() + " must be a date in YYYY-MM-DD format"
	default:
		return fe.Field() + " is invalid"
	}
}

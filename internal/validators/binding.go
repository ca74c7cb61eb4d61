package validators

import (
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/banquet-admin/internal/domain/booking"
	"github.com/BruksfildServices01/banquet-admin/internal/domain/invoice"
)

// Register installs the custom binding tags on gin's validator. Error fields
// are reported by their json names.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	v.RegisterTagNameFunc(jsonName)

	if err := v.RegisterValidation("isodate", isoDate); err != nil {
		return err
	}
	if err := v.RegisterValidation("bookingstatus", bookingStatus); err != nil {
		return err
	}
	return v.RegisterValidation("invoicestatus", invoiceStatus)
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(booking.DayLayout, fl.Field().String())
	return err == nil
}

func bookingStatus(fl validator.FieldLevel) bool {
	return booking.IsValidStatus(fl.Field().String())
}

func invoiceStatus(fl validator.FieldLevel) bool {
	return invoice.IsValidStatus(fl.Field().String())
}

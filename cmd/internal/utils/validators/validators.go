package validators

import (
	"time"

	"vanails/cmd/internal/domain/catalog"
	"vanails/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
)

// IsSlotDate accepts composite dates in the "YYYY-MM-DD HH:MM" format.
// It only checks the shape; whether the time lands on a bookable slot
// is a business rule, not a format rule.
func IsSlotDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != len(utils.SlotDateLayout) {
		return false
	}
	_, err := time.Parse(utils.SlotDateLayout, value)
	return err == nil
}

// IsServiceID accepts identifiers present in the service catalog.
func IsServiceID(fl validator.FieldLevel) bool {
	_, ok := catalog.FindService(fl.Field().String())
	return ok
}

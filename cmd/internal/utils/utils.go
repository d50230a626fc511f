package utils

import (
	"reflect"
	"strings"
	"time"
)

// SlotDateLayout is the composite date format every appointment carries:
// calendar day and half-hour slot joined by a single space.
const SlotDateLayout = "2006-01-02 15:04"

// DayLayout is the calendar-day half of the composite format.
const DayLayout = "2006-01-02"

func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(time.RFC3339)
}

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

// SplitComposite breaks a composite date ("2024-06-10 09:00") into its
// day and time parts. The time part is empty when the value has no slot.
func SplitComposite(date string) (string, string) {
	day, hhmm, _ := strings.Cut(date, " ")
	return day, hhmm
}

// ParseComposite parses a composite date in the given location.
func ParseComposite(date string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(SlotDateLayout, date, loc)
}

// FormatDayPtBR renders a "YYYY-MM-DD" day as "DD/MM/YYYY", the format
// the salon's admin page has always shown.
func FormatDayPtBR(day string) string {
	t, err := time.Parse(DayLayout, day)
	if err != nil {
		return day
	}
	return t.Format("02/01/2006")
}

func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Ptr:
			if !field.IsNil() && field.Elem().Kind() == reflect.String {
				field.Elem().SetString(sanitizeString(field.Elem().String()))
			}

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}

package validator

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
)

const (
	MsgDate = "must be a date in YYYY-MM-DD format"
	MsgYear = "must be a four digit year"
)

type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors collects field errors for a single request. The handler
// layer renders it as a 422 with one entry per field.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Field+": "+e.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	fields := make(map[string]string, len(v))
	for _, e := range v {
		if _, seen := fields[e.Field]; !seen {
			fields[e.Field] = e.Message
		}
	}
	return fields
}

func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, ValidationError{Field: field, Message: message})
}

// Err returns nil when nothing was collected.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Date parses value as a calendar date and records an error against field
// when it is malformed.
func (v *ValidationErrors) Date(field, value string) time.Time {
	d, ok := IsValidDate(value)
	if !ok {
		v.Add(field, MsgDate)
	}
	return d
}

func (v *ValidationErrors) Year(field string, year int) {
	if year < 1900 || year > 9999 {
		v.Add(field, MsgYear)
	}
}

// IsValidDate parses a YYYY-MM-DD string to UTC midnight.
func IsValidDate(s string) (time.Time, bool) {
	d, err := utils.ParseDate(strings.TrimSpace(s))
	return d, err == nil
}

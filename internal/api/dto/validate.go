package dto

import (
	"encoding/json"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/invyfy/invyfy-api/pkg/util"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

const (
	// MaxAmount caps monetary values, mirroring the numeric(12,2) column.
	MaxAmount = 999999999.99

	dateLayout = "2006-01-02"
)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validDate requires YYYY-MM-DD and a real calendar date.
func validDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func validUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func fieldError(field, message string) util.FieldError {
	return util.FieldError{Field: field, Message: message}
}

// OptionalString distinguishes an absent JSON field from an explicit null.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON marks the field as present; a JSON null leaves Value nil.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}

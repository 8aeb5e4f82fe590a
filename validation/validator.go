// Package validation holds the form rule table applied to every create and
// update payload before it reaches a service.
//
// Validate is pure: it reads the record, never mutates it, performs no I/O
// and returns the same Errors for the same input. It is safe for concurrent
// use.
package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Kind names the shape of the record being validated.
type Kind string

const (
	KindLogin          Kind = "login"
	KindRegistration   Kind = "registration"
	KindRestaurant     Kind = "restaurant"
	KindFoodCategory   Kind = "food_category"
	KindFoodItem       Kind = "food_item"
	KindFoodItemUpdate Kind = "food_item_update"
	KindAddress        Kind = "address"
	KindContactMessage Kind = "contact_message"
)

// FormField is the key used when a record is submitted for an unknown kind.
const FormField = "form"

// Record holds candidate field values keyed by field name. Values are
// strings, numbers, or (for attachments) a bool or byte slice marking presence.
type Record map[string]any

// Form is implemented by request payloads that can be checked against the
// rule table.
type Form interface {
	Kind() Kind
	Record() Record
}

// Errors maps a field name to its message. An empty map means the record is
// acceptable for submission.
type Errors map[string]string

// Add records message for field unless the field already has one.
func (e Errors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// Valid returns true if no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Fields returns the failing field names in sorted order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Validate evaluates every rule registered for kind against record. Each
// field reports only its first failing rule; all failing fields are reported.
func Validate(kind Kind, record Record) Errors {
	errs := Errors{}

	fields, ok := ruleTable[kind]
	if !ok {
		errs.Add(FormField, fmt.Sprintf("Unknown form %q", string(kind)))
		return errs
	}

	for _, f := range fields {
		value := f.value(record)
		for _, c := range f.checks {
			if err := validate.Var(value, c.tag); err != nil {
				errs.Add(f.name, c.message)
				break
			}
		}
	}
	return errs
}

// Check validates a Form.
func Check(form Form) Errors {
	return Validate(form.Kind(), form.Record())
}

// value extracts the field from record in the shape its checks expect:
// a trimmed string for text fields and a presence flag for attachments.
func (f field) value(record Record) any {
	raw := record[f.name]
	if f.attachment {
		return attachmentPresent(raw)
	}
	text := textValue(raw)
	if text == "" && f.fallback != "" {
		return f.fallback
	}
	return text
}

func textValue(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case *string:
		if v == nil {
			return ""
		}
		return strings.TrimSpace(*v)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func attachmentPresent(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return false
	case bool:
		return v
	case []byte:
		return len(v) > 0
	case string:
		return strings.TrimSpace(v) != ""
	default:
		return true
	}
}

package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrSlotConflict = errors.New("time slot overlaps with an existing booking")

// FieldErrors collects human-readable validation messages per input field.
// Messages append, never replace.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// ValidationError carries the full set of field errors for a rejected
// booking input. All rules are evaluated independently, so multiple fields
// can be reported at once.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "booking validation failed"
}

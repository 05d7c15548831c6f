// Package form implements the contact form state machine. It holds field
// values, validates them, and moves between editing, submitted, and error
// states. The package has no DOM dependencies so the same logic runs in the
// browser build and in regular tests; callers wire inputs and rendering
// around it.
package form

import (
	"encoding/json"
	"strings"
	"time"
)

// Field identifies one of the four form inputs.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldSubject
	FieldMessage
)

// String returns the field's id suffix as used in element ids and error keys.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldSubject:
		return "subject"
	case FieldMessage:
		return "message"
	}
	return "unknown"
}

// Fields lists all form fields in display order.
var Fields = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

// Data is a completed submission.
type Data struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submitted_at"`
}

// State names the phase the form is in.
type State int

const (
	StateEditing State = iota
	StateSubmitted
	StateError
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitted:
		return "submitted"
	case StateError:
		return "error"
	}
	return "unknown"
}

// StorageKey is where the most recent successful submission is persisted.
const StorageKey = "last_contact_submission"

// TimeLayout formats submission timestamps. The trailing "UTC" is literal
// text; timestamps are converted to UTC before formatting.
const TimeLayout = "2006-01-02 15:04:05 UTC"

// ErrorBanner is the status message shown when submission fails validation.
// The status line renders beneath the form, so the errors are "above" it.
const ErrorBanner = "Please fix the errors above"

// Storage persists submissions. The browser build backs it with
// localStorage; tests use an in-memory map.
type Storage interface {
	SetItem(key, value string) error
}

// Controller drives the form through editing, validation, and submission.
// The zero value is an empty form in the editing state.
type Controller struct {
	// Storage receives the submission JSON under StorageKey. Optional;
	// persistence failures never block a submission.
	Storage Storage
	// Now supplies submission timestamps. Defaults to time.Now.
	Now func() time.Time

	name    string
	email   string
	subject string
	message string

	state  State
	errs   []string
	banner string
	last   Data
}

// SetField stores a raw input value. Values are kept verbatim; validation
// happens on Submit and via IsValid.
func (c *Controller) SetField(f Field, v string) {
	switch f {
	case FieldName:
		c.name = v
	case FieldEmail:
		c.email = v
	case FieldSubject:
		c.subject = v
	case FieldMessage:
		c.message = v
	}
}

// Value returns the current raw value of a field.
func (c *Controller) Value(f Field) string {
	switch f {
	case FieldName:
		return c.name
	case FieldEmail:
		return c.email
	case FieldSubject:
		return c.subject
	case FieldMessage:
		return c.message
	}
	return ""
}

// State reports the current phase.
func (c *Controller) State() State { return c.state }

// Submitted returns the captured submission when the form is in the
// submitted state.
func (c *Controller) Submitted() (Data, bool) {
	if c.state != StateSubmitted {
		return Data{}, false
	}
	return c.last, true
}

// ErrorBanner returns the status message for the error state, or "".
func (c *Controller) ErrorBanner() string { return c.banner }

// ValidationErrors returns the messages collected by the last failed Submit,
// in field order.
func (c *Controller) ValidationErrors() []string { return c.errs }

// IsValid reports whether every field is non-blank after trimming and the
// email contains an "@". It is recomputed from the current values on every
// call.
func (c *Controller) IsValid() bool {
	return strings.TrimSpace(c.name) != "" &&
		strings.TrimSpace(c.email) != "" &&
		strings.TrimSpace(c.subject) != "" &&
		strings.TrimSpace(c.message) != "" &&
		strings.Contains(c.email, "@")
}

// FieldValid reports whether a single field passes its validation rule.
// Used to flag individual inputs after a rejected submission.
func (c *Controller) FieldValid(f Field) bool {
	switch f {
	case FieldName:
		return strings.TrimSpace(c.name) != ""
	case FieldEmail:
		return strings.TrimSpace(c.email) != "" && strings.Contains(c.email, "@")
	case FieldSubject:
		return strings.TrimSpace(c.subject) != ""
	case FieldMessage:
		return strings.TrimSpace(c.message) != ""
	}
	return true
}

// Submit validates the current values. On failure the controller enters the
// error state and records one message per failing field. On success it
// captures the submission with a UTC timestamp, persists it to Storage on a
// best-effort basis, and enters the submitted state.
func (c *Controller) Submit() {
	var errs []string
	if strings.TrimSpace(c.name) == "" {
		errs = append(errs, "Name is required")
	}
	if strings.TrimSpace(c.email) == "" {
		errs = append(errs, "Email is required")
	} else if !strings.Contains(c.email, "@") {
		errs = append(errs, "Please enter a valid email address")
	}
	if strings.TrimSpace(c.subject) == "" {
		errs = append(errs, "Subject is required")
	}
	if strings.TrimSpace(c.message) == "" {
		errs = append(errs, "Message is required")
	}

	if len(errs) > 0 {
		c.errs = errs
		c.banner = ErrorBanner
		c.state = StateError
		return
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	data := Data{
		Name:        c.name,
		Email:       c.email,
		Subject:     c.subject,
		Message:     c.message,
		SubmittedAt: now().UTC().Format(TimeLayout),
	}

	if c.Storage != nil {
		if b, err := json.Marshal(data); err == nil {
			_ = c.Storage.SetItem(StorageKey, string(b))
		}
	}

	c.errs = nil
	c.banner = ""
	c.last = data
	c.state = StateSubmitted
}

// Reset clears every field and returns the form to the editing state,
// regardless of the current state.
func (c *Controller) Reset() {
	c.name, c.email, c.subject, c.message = "", "", "", ""
	c.errs = nil
	c.banner = ""
	c.last = Data{}
	c.state = StateEditing
}

// Package contact holds the contact form domain: the submission record,
// the validation rules shared by the server and its clients, and the
// intake service that persists new submissions.
package contact

import "time"

// AckMessage is the confirmation text returned for every accepted submission.
const AckMessage = "Thank you, I will get back to you soon!"

// Field names, as they appear in JSON bodies and form posts.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Fields lists the form fields in display order.
var Fields = []string{FieldName, FieldEmail, FieldSubject, FieldMessage}

// Input is what a visitor types into the contact form.
type Input struct {
	Name    string `json:"name" form:"name" validate:"required,max=200"`
	Email   string `json:"email" form:"email" validate:"required,max=254,email,dotted_domain"`
	Subject string `json:"subject" form:"subject" validate:"required,max=200"`
	Message string `json:"message" form:"message" validate:"required,max=5000"`
}

// Get returns the value of the named field.
func (in Input) Get(field string) string {
	switch field {
	case FieldName:
		return in.Name
	case FieldEmail:
		return in.Email
	case FieldSubject:
		return in.Subject
	case FieldMessage:
		return in.Message
	}
	return ""
}

// With returns a copy of in with the named field replaced.
// Unknown fields leave the input unchanged and report false.
func (in Input) With(field, value string) (Input, bool) {
	switch field {
	case FieldName:
		in.Name = value
	case FieldEmail:
		in.Email = value
	case FieldSubject:
		in.Subject = value
	case FieldMessage:
		in.Message = value
	default:
		return in, false
	}
	return in, true
}

// IsZero reports whether every field is empty.
func (in Input) IsZero() bool {
	return in == Input{}
}

// Submission is a persisted contact form record. It is never modified
// after creation.
type Submission struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	SourceHash string    `json:"-"` // salted hash of the client IP, never the raw address
	CreatedAt  time.Time `json:"createdAt"`
}

// Ack is the acknowledgement the intake endpoint returns on success.
type Ack struct {
	Message   string    `json:"message"`
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

package submission

import (
	c "reachout/internal/core/domain/common"
)

// Payload is the decoded request body of a form submission. Every field is
// untrusted and type-checked by Validate before use.
type Payload map[string]interface{}

const (
	FieldUsername = "username"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldMessage  = "message"
	// FieldHoneypot is a hidden form field invisible to humans; bots fill it.
	FieldHoneypot = "_hp"
)

const (
	MaxNameLength    = 100
	MaxEmailLength   = 200 // exclusive: an email of exactly 200 chars is rejected
	MaxMessageLength = 2000
)

// Submission is a validated payload ready for relaying.
type Submission struct {
	Username    c.Slug
	SenderName  string
	SenderEmail c.Email
	Message     string
}

// NewSubmission extracts the typed fields from a payload that has already
// passed Validate. It panics on a payload that has not.
func NewSubmission(p Payload) Submission {
	return Submission{
		Username:    c.NewSlug(p[FieldUsername].(string)),
		SenderName:  p[FieldName].(string),
		SenderEmail: c.Email(p[FieldEmail].(string)),
		Message:     p[FieldMessage].(string),
	}
}

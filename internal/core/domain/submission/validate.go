package submission

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type Reason string

const (
	ReasonHoneypot       Reason = "honeypot"
	ReasonMissingFields  Reason = "missing_fields"
	ReasonInvalidTypes   Reason = "invalid_types"
	ReasonEmptyName      Reason = "empty_name"
	ReasonEmptyMessage   Reason = "empty_message"
	ReasonNameTooLong    Reason = "name_too_long"
	ReasonEmailTooLong   Reason = "email_too_long"
	ReasonMessageTooLong Reason = "message_too_long"
	ReasonInvalidEmail   Reason = "invalid_email"
	ReasonSpamContent    Reason = "spam_content"
)

type Result struct {
	OK     bool
	Reason Reason
}

func accepted() Result {
	return Result{OK: true}
}

func rejected(reason Reason) Result {
	return Result{OK: false, Reason: reason}
}

// IsSpam reports whether the rejection indicates bot or spam activity.
// Such rejections must be masked as success so the sender gets no feedback.
func (r Result) IsSpam() bool {
	return !r.OK && (r.Reason == ReasonHoneypot || r.Reason == ReasonSpamContent)
}

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Patterns that strongly indicate spam content.
var spamPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bviagra\b`),
	regexp.MustCompile(`(?i)\bcasino\b`),
	regexp.MustCompile(`(?i)\bcrypto\b.*\binvest`),
	regexp.MustCompile(`(?i)https?://[^\s]{5,}.*https?://`), // multiple URLs in one text
	regexp.MustCompile(`(?i)\[url=`),                        // BBCode links
	regexp.MustCompile(`(?i)<a\s+href`),                     // HTML links
}

// Validate classifies a raw submission payload. It is pure and
// deterministic; the first failing check wins.
func Validate(p Payload) Result {
	if isTruthy(p[FieldHoneypot]) {
		return rejected(ReasonHoneypot)
	}

	username := p[FieldUsername]
	name := p[FieldName]
	email := p[FieldEmail]
	message := p[FieldMessage]

	if !isTruthy(username) || !isTruthy(name) || !isTruthy(email) || !isTruthy(message) {
		return rejected(ReasonMissingFields)
	}

	_, usernameOK := username.(string)
	nameStr, nameOK := name.(string)
	emailStr, emailOK := email.(string)
	messageStr, messageOK := message.(string)
	if !usernameOK || !nameOK || !emailOK || !messageOK {
		return rejected(ReasonInvalidTypes)
	}

	if strings.TrimSpace(nameStr) == "" {
		return rejected(ReasonEmptyName)
	}
	if strings.TrimSpace(messageStr) == "" {
		return rejected(ReasonEmptyMessage)
	}

	if utf8.RuneCountInString(nameStr) > MaxNameLength {
		return rejected(ReasonNameTooLong)
	}
	if utf8.RuneCountInString(emailStr) >= MaxEmailLength {
		return rejected(ReasonEmailTooLong)
	}
	if utf8.RuneCountInString(messageStr) > MaxMessageLength {
		return rejected(ReasonMessageTooLong)
	}

	if !emailShape.MatchString(emailStr) {
		return rejected(ReasonInvalidEmail)
	}

	for _, pattern := range spamPatterns {
		if pattern.MatchString(messageStr) || pattern.MatchString(nameStr) {
			return rejected(ReasonSpamContent)
		}
	}

	return accepted()
}

// isTruthy mirrors the loose truthiness the public form clients rely on:
// absent, nil, empty string, zero number and false are all missing.
func isTruthy(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return value != ""
	case bool:
		return value
	case float64:
		return value != 0
	default:
		return true
	}
}

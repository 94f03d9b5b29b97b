package submission

import "errors"

var (
	// ErrMalformedPayload marks a body that could not be decoded at all.
	ErrMalformedPayload = errors.New("malformed submission payload")
	// ErrInvalidSubmission marks a validation failure that may be surfaced
	// to the sender as a generic validation error.
	ErrInvalidSubmission = errors.New("invalid submission")
	// ErrSpamSubmission marks a bot or spam classification. Callers must
	// present it as success so the sender gets no feedback.
	ErrSpamSubmission = errors.New("submission classified as spam")
	// ErrDeliveryFailed marks a relay email that could not be sent.
	ErrDeliveryFailed = errors.New("could not deliver submission")
)

package submission

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() Payload {
	return Payload{
		FieldUsername: "testuser",
		FieldName:     "Alice",
		FieldEmail:    "alice@example.com",
		FieldMessage:  "Hello there",
	}
}

func TestValidateAcceptsValidPayload(t *testing.T) {
	result := Validate(validPayload())

	require.True(t, result.OK)
	require.False(t, result.IsSpam())
}

func TestValidateHoneypot(t *testing.T) {
	p := validPayload()
	p[FieldHoneypot] = "bot-value"
	result := Validate(p)

	assert := require.New(t)
	assert.False(result.OK)
	assert.Equal(ReasonHoneypot, result.Reason)
	assert.True(result.IsSpam())

	p[FieldHoneypot] = ""
	assert.True(Validate(p).OK)
}

func TestValidateMissingFields(t *testing.T) {
	for _, field := range []string{FieldUsername, FieldName, FieldEmail, FieldMessage} {
		field := field
		t.Run(field, func(t *testing.T) {
			p := validPayload()
			delete(p, field)
			result := Validate(p)
			assert.False(t, result.OK)
			assert.Equal(t, ReasonMissingFields, result.Reason)
		})
	}
}

func TestValidateInvalidTypes(t *testing.T) {
	p := validPayload()
	p[FieldName] = float64(123)
	result := Validate(p)

	assert := require.New(t)
	assert.False(result.OK)
	assert.Equal(ReasonInvalidTypes, result.Reason)
}

func TestValidateEmptiness(t *testing.T) {
	p := validPayload()
	p[FieldName] = "   "
	result := Validate(p)
	require.Equal(t, ReasonEmptyName, result.Reason)

	p = validPayload()
	p[FieldMessage] = " \t "
	result = Validate(p)
	require.Equal(t, ReasonEmptyMessage, result.Reason)
}

func TestValidateLengthBounds(t *testing.T) {
	cases := []struct {
		id       string
		field    string
		value    string
		ok       bool
		expected Reason
	}{
		{id: "name 100 accepted", field: FieldName, value: strings.Repeat("a", 100), ok: true},
		{id: "name 101 rejected", field: FieldName, value: strings.Repeat("a", 101), expected: ReasonNameTooLong},
		{
			id:       "email 200 rejected",
			field:    FieldEmail,
			value:    strings.Repeat("a", 195) + "@x.io",
			expected: ReasonEmailTooLong,
		},
		{id: "message 2000 accepted", field: FieldMessage, value: strings.Repeat("a", 2000), ok: true},
		{
			id:       "message 2001 rejected",
			field:    FieldMessage,
			value:    strings.Repeat("a", 2001),
			expected: ReasonMessageTooLong,
		},
	}
	for _, testcase := range cases {
		testcase := testcase
		t.Run(testcase.id, func(t *testing.T) {
			p := validPayload()
			p[testcase.field] = testcase.value
			result := Validate(p)
			assert.Equal(t, testcase.ok, result.OK)
			if !testcase.ok {
				assert.Equal(t, testcase.expected, result.Reason)
			}
		})
	}
}

func TestValidateEmailShape(t *testing.T) {
	invalid := []string{"notanemail", "missing@", "@nodomain", "two@@at.com", "space in@email.com"}
	for _, email := range invalid {
		email := email
		t.Run(email, func(t *testing.T) {
			p := validPayload()
			p[FieldEmail] = email
			result := Validate(p)
			assert.False(t, result.OK)
			assert.Equal(t, ReasonInvalidEmail, result.Reason)
		})
	}

	p := validPayload()
	p[FieldEmail] = "user@mail.example.co.uk"
	require.True(t, Validate(p).OK)
}

func TestValidateSpamContent(t *testing.T) {
	cases := []struct {
		id    string
		field string
		value string
		spam  bool
	}{
		{id: "viagra in message", field: FieldMessage, value: "Buy cheap Viagra online", spam: true},
		{id: "casino in name", field: FieldName, value: "Best Casino Online", spam: true},
		{id: "crypto investment pitch", field: FieldMessage, value: "crypto is hot, invest now", spam: true},
		{
			id:    "two urls",
			field: FieldMessage,
			value: "Check http://spam.com and also https://spam2.com for deals",
			spam:  true,
		},
		{id: "bbcode link", field: FieldMessage, value: "[url=http://spam.com]deals[/url]", spam: true},
		{id: "html anchor", field: FieldMessage, value: `Click <a href="http://spam.com">here</a>`, spam: true},
		{id: "single legitimate url", field: FieldMessage, value: "Here is my portfolio https://alice.dev", spam: false},
	}
	for _, testcase := range cases {
		testcase := testcase
		t.Run(testcase.id, func(t *testing.T) {
			p := validPayload()
			p[testcase.field] = testcase.value
			result := Validate(p)
			if testcase.spam {
				assert.False(t, result.OK)
				assert.Equal(t, ReasonSpamContent, result.Reason)
				assert.True(t, result.IsSpam())
			} else {
				assert.True(t, result.OK)
			}
		})
	}
}

func TestNewSubmission(t *testing.T) {
	p := validPayload()
	p[FieldUsername] = "TestUser"
	s := NewSubmission(p)

	assert := require.New(t)
	assert.Equal("testuser", string(s.Username))
	assert.Equal("Alice", s.SenderName)
	assert.Equal("alice@example.com", string(s.SenderEmail))
	assert.Equal("Hello there", s.Message)
}

package profile

import (
	c "reachout/internal/core/domain/common"
	"time"
)

type ID int64

// DefaultMonthlyLimit is the per-owner monthly submission ceiling applied
// when no explicit limit is configured.
const DefaultMonthlyLimit uint32 = 100

// Profile is a snapshot of a form owner's record. It is owned by the
// account product; this service only reads it and delegates counter
// mutation to the repository.
type Profile struct {
	ID                     ID
	Username               string
	Slug                   c.Slug
	Email                  c.Email
	FormTitle              string
	IntroMessage           c.Optional[string]
	SubmitLabel            string
	ThankyouMessage        string
	DestinationEmail       c.Email
	PrivacyURL             c.Optional[string]
	FormPrimaryColor       string
	FormBgColor            string
	SubmissionCount        uint32
	MonthlySubmissionCount uint32
	MonthlyResetAt         time.Time
	IsLive                 bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// IsOpen reports whether the form accepts submissions at all. A form
// without a published privacy policy is never open.
func (p Profile) IsOpen() bool {
	return p.IsLive && p.PrivacyURL.IsPresent
}

// IsAtMonthlyLimit reports whether the owner's monthly quota is exhausted.
func (p Profile) IsAtMonthlyLimit(limit uint32) bool {
	return p.MonthlySubmissionCount >= limit
}

// NearLimitThreshold is the count at which the owner gets a warning notice,
// the integer floor of 80% of the limit.
func NearLimitThreshold(limit uint32) uint32 {
	return limit * 8 / 10
}

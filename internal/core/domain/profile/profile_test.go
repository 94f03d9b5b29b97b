package profile

import (
	c "reachout/internal/core/domain/common"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOpen(t *testing.T) {
	cases := []struct {
		id      string
		profile Profile
		open    bool
	}{
		{
			id: "live with privacy policy",
			profile: Profile{
				IsLive:     true,
				PrivacyURL: c.NewOptional("https://example.org/privacy", true),
			},
			open: true,
		},
		{
			id:      "not live",
			profile: Profile{IsLive: false, PrivacyURL: c.NewOptional("https://example.org/privacy", true)},
			open:    false,
		},
		{
			id:      "no privacy policy",
			profile: Profile{IsLive: true},
			open:    false,
		},
	}
	for _, testcase := range cases {
		testcase := testcase
		t.Run(testcase.id, func(t *testing.T) {
			assert.Equal(t, testcase.open, testcase.profile.IsOpen())
		})
	}
}

func TestIsAtMonthlyLimit(t *testing.T) {
	assert := require.New(t)

	p := Profile{MonthlySubmissionCount: 99}
	assert.False(p.IsAtMonthlyLimit(100))

	p.MonthlySubmissionCount = 100
	assert.True(p.IsAtMonthlyLimit(100))

	p.MonthlySubmissionCount = 101
	assert.True(p.IsAtMonthlyLimit(100))
}

func TestNearLimitThreshold(t *testing.T) {
	assert := require.New(t)

	assert.Equal(uint32(80), NearLimitThreshold(100))
	assert.Equal(uint32(40), NearLimitThreshold(50))
	assert.Equal(uint32(4), NearLimitThreshold(5))
}

func TestNextMonthlyReset(t *testing.T) {
	assert := require.New(t)

	now := time.Date(2025, 7, 15, 13, 45, 10, 0, time.UTC)
	assert.Equal(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), NextMonthlyReset(now))

	endOfYear := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), NextMonthlyReset(endOfYear))
}

package resetmonthlycounts

import (
	"context"
	"errors"
	c "reachout/internal/core/domain/common"
	"reachout/internal/core/domain/logging"
	"reachout/internal/core/domain/profile"
	"reachout/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var NOW = time.Date(2025, 8, 1, 0, 30, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger   *logging.FakeLogger
	Profiles *profile.FakeRepository
	Service  services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Profiles = profile.NewFakeRepository()
	suite.Service = New(suite.Logger, suite.Profiles, func() time.Time { return NOW })
}

func TestResetMonthlyCountsService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createProfile(slug string, resetAt time.Time, count uint32) profile.Profile {
	p, err := suite.Profiles.Create(context.Background(), profile.CreateInput{
		Username:         slug,
		Slug:             c.Slug(slug),
		Email:            c.Email(slug + "@example.org"),
		DestinationEmail: c.Email(slug + "-inbox@example.org"),
		MonthlyResetAt:   resetAt,
		IsLive:           true,
		CreatedAt:        NOW.AddDate(0, -2, 0),
	})
	suite.Require().Nil(err)
	suite.Profiles.SetMonthlyCount(p.ID, count)
	return p
}

func (suite *testSuite) TestResetsOnlyDueProfiles() {
	due := suite.createProfile("due", NOW.Add(-time.Minute), 42)
	notDue := suite.createProfile("notdue", NOW.AddDate(0, 1, 0), 7)

	result, err := suite.Service.Run(context.Background(), Input{})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(int64(1), result.ResetCount)

	dueCount, err := suite.Profiles.GetMonthlySubmissionCount(context.Background(), due.ID)
	assert.Nil(err)
	assert.Equal(uint32(0), dueCount)

	notDueCount, err := suite.Profiles.GetMonthlySubmissionCount(context.Background(), notDue.ID)
	assert.Nil(err)
	assert.Equal(uint32(7), notDueCount)
}

func (suite *testSuite) TestNothingDue() {
	suite.createProfile("notdue", NOW.AddDate(0, 1, 0), 7)

	result, err := suite.Service.Run(context.Background(), Input{})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(int64(0), result.ResetCount)
}

func (suite *testSuite) TestRepositoryError() {
	suite.Profiles.ResetError = errors.New("connection lost")

	_, err := suite.Service.Run(context.Background(), Input{})

	suite.Require().NotNil(err)
}

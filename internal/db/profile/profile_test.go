package profile

import (
	"context"
	"os"
	c "reachout/internal/core/domain/common"
	"reachout/internal/core/domain/profile"
	"reachout/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

var NOW time.Time = time.Date(2023, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxProfileRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxProfileRepository(t *testing.T) {
	if os.Getenv("TEST_POSTGRESQL_URL") == "" {
		t.Skip("TEST_POSTGRESQL_URL is not set.")
	}
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createProfile(slug string, isLive bool) profile.Profile {
	p, err := suite.repo.Create(context.Background(), profile.CreateInput{
		Username:         slug,
		Slug:             c.NewSlug(slug),
		Email:            c.NewEmail(slug + "@test.test"),
		FormTitle:        "Contact me",
		SubmitLabel:      "Send",
		ThankyouMessage:  "Thanks!",
		DestinationEmail: c.NewEmail(slug + "@test.test"),
		PrivacyURL:       c.NewOptional("https://test.test/privacy", true),
		FormPrimaryColor: "#111111",
		FormBgColor:      "#ffffff",
		MonthlyResetAt:   profile.NextMonthlyReset(NOW),
		IsLive:           isLive,
		CreatedAt:        NOW,
	})
	suite.Require().Nil(err)
	return p
}

func (suite *testSuite) TestCreateAndGetBySlug() {
	created := suite.createProfile("mikee", true)

	got, err := suite.repo.GetBySlug(context.Background(), c.NewSlug("mikee"))

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, got.ID)
	assert.Equal(c.NewSlug("mikee"), got.Slug)
	assert.Equal("Contact me", got.FormTitle)
	assert.False(got.IntroMessage.IsPresent)
	assert.True(got.PrivacyURL.IsPresent)
	assert.True(got.IsLive)
	assert.Equal(uint32(0), got.MonthlySubmissionCount)
}

func (suite *testSuite) TestCreateDuplicateSlug() {
	suite.createProfile("mikee", true)

	_, err := suite.repo.Create(context.Background(), profile.CreateInput{
		Username:         "other",
		Slug:             c.NewSlug("mikee"),
		Email:            c.NewEmail("other@test.test"),
		DestinationEmail: c.NewEmail("other@test.test"),
		MonthlyResetAt:   profile.NextMonthlyReset(NOW),
		CreatedAt:        NOW,
	})

	assert := suite.Require()
	assert.NotNil(err)
	assert.IsType(&profile.SlugAlreadyExistsError{}, err)
}

func (suite *testSuite) TestGetBySlugNotFound() {
	_, err := suite.repo.GetBySlug(context.Background(), c.NewSlug("ghost"))

	suite.Require().ErrorIs(err, profile.ErrProfileDoesNotExist)
}

func (suite *testSuite) TestIncrementMonthlySubmissionCount() {
	created := suite.createProfile("mikee", true)

	assert := suite.Require()
	for i := 0; i < 3; i++ {
		assert.Nil(suite.repo.IncrementMonthlySubmissionCount(context.Background(), created.ID))
	}

	count, err := suite.repo.GetMonthlySubmissionCount(context.Background(), created.ID)
	assert.Nil(err)
	assert.Equal(uint32(3), count)

	got, err := suite.repo.GetBySlug(context.Background(), created.Slug)
	assert.Nil(err)
	assert.Equal(uint32(3), got.SubmissionCount)
}

func (suite *testSuite) TestGetMonthlySubmissionCountNotFound() {
	_, err := suite.repo.GetMonthlySubmissionCount(context.Background(), profile.ID(12345))

	suite.Require().ErrorIs(err, profile.ErrProfileDoesNotExist)
}

func (suite *testSuite) TestResetDueMonthlyCounts() {
	due := suite.createProfile("due", true)
	notDue := suite.createProfile("notdue", true)

	assert := suite.Require()
	assert.Nil(suite.repo.IncrementMonthlySubmissionCount(context.Background(), due.ID))
	assert.Nil(suite.repo.IncrementMonthlySubmissionCount(context.Background(), notDue.ID))

	_, err := suite.pool.Exec(
		context.Background(),
		`UPDATE profile SET monthly_reset_at = $1 WHERE id = $2`,
		NOW.Add(-time.Hour),
		int64(due.ID),
	)
	assert.Nil(err)

	resetCount, err := suite.repo.ResetDueMonthlyCounts(context.Background(), NOW)
	assert.Nil(err)
	assert.Equal(int64(1), resetCount)

	dueCount, err := suite.repo.GetMonthlySubmissionCount(context.Background(), due.ID)
	assert.Nil(err)
	assert.Equal(uint32(0), dueCount)

	notDueCount, err := suite.repo.GetMonthlySubmissionCount(context.Background(), notDue.ID)
	assert.Nil(err)
	assert.Equal(uint32(1), notDueCount)

	gotDue, err := suite.repo.GetBySlug(context.Background(), due.Slug)
	assert.Nil(err)
	assert.Equal(profile.NextMonthlyReset(NOW), gotDue.MonthlyResetAt.UTC())
}

package ratelimiting

import (
	"context"
	"errors"
	"reachout/internal/core/domain/logging"
	"reachout/internal/core/domain/ratelimiter"
	"reachout/internal/core/services"
	"testing"

	"github.com/stretchr/testify/suite"
)

type input struct {
	IPKey string
}

func (i input) GetRateLimitKey() string {
	return "submit::ip::" + i.IPKey
}

type result struct{}

type stubService struct {
	WasCalled bool
}

func newStubService() *stubService {
	return &stubService{}
}

func (s *stubService) Run(ctx context.Context, input input) (result result, err error) {
	s.WasCalled = true
	return result, nil
}

type testSuite struct {
	suite.Suite
	Logger      *logging.FakeLogger
	RateLimiter *ratelimiter.FakeRateLimiter
	Inner       *stubService
	Service     services.Service[input, result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.RateLimiter = ratelimiter.NewFakeRateLimiter(false)
	suite.Inner = newStubService()
	suite.Service = WithRateLimiting[input, result](
		suite.Logger,
		suite.RateLimiter,
		ratelimiter.Limit{Value: 5, Interval: ratelimiter.Hour},
		suite.Inner,
	)
}

func TestRateLimitingService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestNotLimited() {
	ctx := context.Background()
	suite.RateLimiter.IsAllowed = true
	_, err := suite.Service.Run(ctx, input{IPKey: "1.2.3.4"})

	assert := suite.Require()
	assert.Nil(err)
	assert.True(suite.Inner.WasCalled)
	assert.Equal([]string{"submit::ip::1.2.3.4"}, suite.RateLimiter.CheckedKeys)
}

func (suite *testSuite) TestLimited() {
	ctx := context.Background()
	suite.RateLimiter.IsAllowed = false
	_, err := suite.Service.Run(ctx, input{IPKey: "1.2.3.4"})

	assert := suite.Require()
	assert.True(errors.Is(err, ratelimiter.ErrRateLimitExceeded))
	assert.False(suite.Inner.WasCalled)
}

package createsubmission

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reachout/internal/core/domain/profile"
	"reachout/internal/core/domain/ratelimiter"
	"reachout/internal/core/domain/submission"
	service "reachout/internal/core/services/process_submission"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	return result, nil
}

func newRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/submissions", strings.NewReader(body))
	r.Header.Set("X-Forwarded-For", "1.2.3.4")
	return r
}

func TestCreateSubmissionHandler(t *testing.T) {
	cases := []struct {
		id             string
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			id:             "success",
			serviceErr:     nil,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":true}`,
		},
		{
			id:             "spam masked as success",
			serviceErr:     submission.ErrSpamSubmission,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":true}`,
		},
		{
			id:             "rate limited",
			serviceErr:     ratelimiter.ErrRateLimitExceeded,
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `{"error":"Too many requests. Please try again later."}`,
		},
		{
			id:             "malformed payload",
			serviceErr:     submission.ErrMalformedPayload,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request."}`,
		},
		{
			id:             "invalid submission",
			serviceErr:     submission.ErrInvalidSubmission,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"All fields are required."}`,
		},
		{
			id:             "form not found",
			serviceErr:     profile.ErrProfileDoesNotExist,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Form not found."}`,
		},
		{
			id:             "form not available",
			serviceErr:     profile.ErrFormNotAvailable,
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"This form is not available."}`,
		},
		{
			id:             "monthly limit reached",
			serviceErr:     profile.ErrMonthlyLimitReached,
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `{"error":"This form has reached its monthly limit."}`,
		},
		{
			id:             "delivery failed",
			serviceErr:     submission.ErrDeliveryFailed,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to deliver your message. Please try again."}`,
		},
	}
	for _, testcase := range cases {
		testcase := testcase
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.serviceErr}
			handler := New(stub)

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, newRequest(`{"username":"mikee"}`))

			assert.Equal(t, testcase.expectedStatus, recorder.Code)
			assert.Equal(t, testcase.expectedBody, recorder.Body.String())
		})
	}
}

func TestCreateSubmissionHandlerPassesBodyAndIPKey(t *testing.T) {
	assert := require.New(t)
	stub := &stubService{}
	handler := New(stub)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, newRequest(`{"username":"mikee"}`))

	assert.NotNil(stub.input)
	assert.Equal("1.2.3.4", stub.input.IPKey)
	assert.Equal(`{"username":"mikee"}`, string(stub.input.Body))
}

package createsubmission

import (
	"errors"
	"io"
	"net/http"
	e "reachout/internal/core/domain/errors"
	"reachout/internal/core/domain/profile"
	"reachout/internal/core/domain/ratelimiter"
	"reachout/internal/core/domain/submission"
	"reachout/internal/core/services"
	service "reachout/internal/core/services/process_submission"
	"reachout/internal/http/handlers/response"
	"reachout/internal/http/ipkey"
)

// maxBodySize caps the request body well above the largest valid payload;
// oversized fields are rejected by validation, not by truncation.
const maxBodySize = 64 * 1024

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(rw, r.Body, maxBodySize))
	if err != nil {
		response.RenderError(rw, "Invalid request.", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(
		r.Context(),
		service.Input{IPKey: ipkey.FromRequest(r), Body: body},
	)
	if err == nil {
		response.RenderOK(rw)
		return
	}

	switch {
	case errors.Is(err, submission.ErrSpamSubmission):
		// Indistinguishable from success so bots get no feedback.
		response.RenderOK(rw)
	case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
		response.RenderError(rw, "Too many requests. Please try again later.", http.StatusTooManyRequests)
	case errors.Is(err, submission.ErrMalformedPayload):
		response.RenderError(rw, "Invalid request.", http.StatusBadRequest)
	case errors.Is(err, submission.ErrInvalidSubmission):
		response.RenderError(rw, "All fields are required.", http.StatusBadRequest)
	case errors.Is(err, profile.ErrProfileDoesNotExist):
		response.RenderError(rw, "Form not found.", http.StatusNotFound)
	case errors.Is(err, profile.ErrFormNotAvailable):
		response.RenderError(rw, "This form is not available.", http.StatusForbidden)
	case errors.Is(err, profile.ErrMonthlyLimitReached):
		response.RenderError(rw, "This form has reached its monthly limit.", http.StatusTooManyRequests)
	case errors.Is(err, submission.ErrDeliveryFailed):
		response.RenderError(rw, "Failed to deliver your message. Please try again.", http.StatusInternalServerError)
	default:
		response.RenderInternalError(rw)
	}
}

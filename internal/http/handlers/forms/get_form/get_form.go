package getform

import (
	"errors"
	"net/http"
	c "reachout/internal/core/domain/common"
	e "reachout/internal/core/domain/errors"
	"reachout/internal/core/domain/profile"
	"reachout/internal/core/services"
	service "reachout/internal/core/services/get_public_form"
	"reachout/internal/http/handlers/response"
	"regexp"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

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
	slug := c.NewSlug(chi.URLParam(r, "slug"))

	err := validation.Validate(
		string(slug),
		validation.Required,
		validation.Length(1, 64),
		validation.Match(slugPattern),
	)
	if err != nil {
		response.RenderError(rw, "Form not found.", http.StatusNotFound)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Slug: slug})
	if errors.Is(err, profile.ErrProfileDoesNotExist) {
		response.RenderError(rw, "Form not found.", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	form := response.Form{}
	form.FromDomainType(result.Profile)
	response.Render(rw, form, http.StatusOK)
}

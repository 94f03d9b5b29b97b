package profile

import (
	"errors"
	"fmt"
	c "reachout/internal/core/domain/common"
)

var (
	ErrProfileDoesNotExist = errors.New("profile does not exist")
	ErrFormNotAvailable    = errors.New("form is not available")
	ErrMonthlyLimitReached = errors.New("form has reached its monthly limit")
)

type SlugAlreadyExistsError struct {
	Slug c.Slug
}

func (e *SlugAlreadyExistsError) Error() string {
	return fmt.Sprintf("profile with slug '%s' already exists", e.Slug)
}

package handler

import (
	"strconv"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const maxPageLimit = 200

// bindAndValidate decodes the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// pageQuery reads ?offset=&limit=. Missing values mean the first page with no limit.
func pageQuery(c echo.Context) (repository.Page, error) {
	var page repository.Page
	for name, dst := range map[string]*int{"offset": &page.Offset, "limit": &page.Limit} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return page, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
		}
		*dst = n
	}
	if page.Limit > maxPageLimit {
		page.Limit = maxPageLimit
	}

	return page, nil
}

// sessionFrom returns the session stored by the auth middleware.
func sessionFrom(c echo.Context) (*entity.Session, error) {
	session, err := middleware.Session(c)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return session, nil
}

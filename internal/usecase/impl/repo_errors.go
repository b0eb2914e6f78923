package impl

import (
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
)

// translateNotFound maps a repository miss to its domain error and wraps anything else.
func translateNotFound(err, repoErr error, domainErr *domainerrors.BaseError, message string) error {
	if errors.Is(err, repoErr) {
		return domainErr
	}

	return errors.Wrap(err, message)
}

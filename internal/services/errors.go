package services

import (
	"errors"

	"github.com/sbilibin2017/gw-ticket-registry/internal/docstore"
	"github.com/sbilibin2017/gw-ticket-registry/internal/repositories"
)

// Error variables
var (
	ErrMissingField       = errors.New("all fields are required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrResetDelivery      = errors.New("reset token delivery failed")

	ErrDuplicateUsername     = repositories.ErrDuplicateUsername
	ErrDuplicateEmail        = repositories.ErrDuplicateEmail
	ErrNotFound              = repositories.ErrNotFound
	ErrForbidden             = repositories.ErrForbidden
	ErrInvalidOrExpiredToken = repositories.ErrInvalidOrExpiredToken
	ErrStockOverflow         = repositories.ErrStockOverflow
	ErrCorruptDocument       = docstore.ErrCorruptDocument
)

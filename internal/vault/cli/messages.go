package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/vault/store"
)

// describeError turns a domain error into a message for the user.
func describeError(err error) string {
	var partial *store.PartialDeleteError

	switch {
	case errors.As(err, &partial):
		return fmt.Sprintf("deleted %d files, %d could not be deleted (%v); run clear again", len(partial.Deleted), len(partial.Remaining), partial.Err)
	case errors.Is(err, common.ErrStoreUnavailable):
		return "storage is unavailable: " + err.Error()
	case errors.Is(err, common.ErrDuplicateKey):
		return "an account with this email already exists"
	case errors.Is(err, common.ErrInvalidCredentials):
		return "invalid email or password"
	case errors.Is(err, common.ErrEmptyCredentials):
		return "please provide email and password"
	case errors.Is(err, common.ErrNotLoggedIn):
		return "please login first"
	case errors.Is(err, common.ErrUnsupportedType):
		return "unsupported file type, allowed are JPEG, PNG, WebP and GIF images and MP4 and WebM videos"
	case errors.Is(err, common.ErrSizeLimitExceeded):
		return "file is too large"
	case errors.Is(err, common.ErrCompressionExhausted):
		return "the image could not be compressed below the size limit"
	case errors.Is(err, common.ErrDecode):
		return "the image could not be read"
	case errors.Is(err, common.ErrNotFound):
		return "file not found"
	}
	return err.Error()
}

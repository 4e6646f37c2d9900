// Package refreshtokens declares the server-side repository contract for
// managing refresh tokens in persistent storage.
package refreshtokens

import (
	"context"

	"github.com/mango-services/loyalty-auth/internal/server/models"
)

// Repository defines operations for issuing, retrieving and consuming refresh tokens.
// Tokens are never deleted.
type Repository interface {
	// Create stores a new refresh token.
	Create(ctx context.Context, token *models.RefreshToken) error

	// Find looks up a refresh token by its opaque token string.
	// Implementations return common.ErrorNotFound when the token is absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// MarkUsed flips the used flag of a live token. It returns
	// common.ErrorNotFound when the token is already used or revoked,
	// so only one of several concurrent callers can succeed.
	MarkUsed(ctx context.Context, id string) error
}

package repository

import (
	"context"
	"time"

	"authstack/internal/domain/model"
)

// UserRepository is the credential store. Implementations must make the
// Consume* operations a single conditional find-and-update so that two
// concurrent consumers of one token cannot both succeed.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByIdentifier matches the value against either the email or the
	// username field. Both fields carry unique indexes, so a value matches
	// at most one user per field.
	FindByIdentifier(ctx context.Context, identifier string) (*model.User, error)

	SetVerificationToken(ctx context.Context, userID, tokenHash string, expiry time.Time) error
	SetResetToken(ctx context.Context, userID, tokenHash string, expiry time.Time) error

	// ConsumeVerificationToken marks the matching user verified and clears
	// the token pair, returning common.ErrInvalidOrExpiredToken when no
	// user holds an unexpired token with that hash.
	ConsumeVerificationToken(ctx context.Context, tokenHash string, now time.Time) (*model.User, error)

	// ConsumeResetToken replaces the password digest of the matching user
	// and clears the reset pair, with the same not-found semantics.
	ConsumeResetToken(ctx context.Context, tokenHash, newPasswordHash string, now time.Time) (*model.User, error)
}

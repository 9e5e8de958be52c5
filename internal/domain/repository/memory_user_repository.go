package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"authstack/internal/common"
	"authstack/internal/domain/model"
)

// memoryUserRepository is an in-memory credential store for tests and local
// development. All operations, including the token consumes, run under one
// mutex, which gives the same exactly-once consumption guarantee as the
// Mongo conditional update.
type memoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]*model.User)}
}

func (r *memoryUserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return fmt.Errorf("user with given username or email already exists: %w", common.ErrDuplicateKey)
		}
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *user
	return &out, nil
}

func (r *memoryUserRepository) FindByIdentifier(_ context.Context, identifier string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Email match is tried before username match; with both fields unique a
	// single value can only ever reach one user per field.
	for _, user := range r.users {
		if user.Email == identifier {
			out := *user
			return &out, nil
		}
	}
	for _, user := range r.users {
		if user.Username == identifier {
			out := *user
			return &out, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memoryUserRepository) SetVerificationToken(_ context.Context, userID, tokenHash string, expiry time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return common.ErrNotFound
	}
	user.VerifyTokenHash = tokenHash
	user.VerifyTokenExpiry = &expiry
	user.UpdatedAt = time.Now()
	return nil
}

func (r *memoryUserRepository) SetResetToken(_ context.Context, userID, tokenHash string, expiry time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return common.ErrNotFound
	}
	user.ResetTokenHash = tokenHash
	user.ResetTokenExpiry = &expiry
	user.UpdatedAt = time.Now()
	return nil
}

func (r *memoryUserRepository) ConsumeVerificationToken(_ context.Context, tokenHash string, now time.Time) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.VerifyTokenHash == tokenHash && user.VerifyTokenHash != "" &&
			user.VerifyTokenExpiry != nil && user.VerifyTokenExpiry.After(now) {
			user.IsVerified = true
			user.VerifyTokenHash = ""
			user.VerifyTokenExpiry = nil
			user.UpdatedAt = now
			out := *user
			return &out, nil
		}
	}
	return nil, common.ErrInvalidOrExpiredToken
}

func (r *memoryUserRepository) ConsumeResetToken(_ context.Context, tokenHash, newPasswordHash string, now time.Time) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ResetTokenHash == tokenHash && user.ResetTokenHash != "" &&
			user.ResetTokenExpiry != nil && user.ResetTokenExpiry.After(now) {
			user.HashedPassword = newPasswordHash
			user.ResetTokenHash = ""
			user.ResetTokenExpiry = nil
			user.UpdatedAt = now
			out := *user
			return &out, nil
		}
	}
	return nil, common.ErrInvalidOrExpiredToken
}

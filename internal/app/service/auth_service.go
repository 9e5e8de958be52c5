package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"authstack/internal/common"
	"authstack/internal/common/security"
	"authstack/internal/domain/model"
	"authstack/internal/domain/repository"

	"github.com/google/uuid"
)

const minPasswordLength = 6

type AuthService struct {
	userRepo     repository.UserRepository
	tokens       *security.TokenManager
	verification *VerificationService
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokens *security.TokenManager,
	verification *VerificationService,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokens:       tokens,
		verification: verification,
	}
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

type LoginResult struct {
	User  *model.User
	Token string
}

func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if username == "" {
		return nil, common.Errorf("username must not be empty: %w", common.ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, common.Errorf("email address is not valid: %w", common.ErrValidation)
	}
	if len(req.Password) < minPasswordLength {
		return nil, common.Errorf("password must be at least %d characters: %w", minPasswordLength, common.ErrValidation)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       username,
		Email:          email,
		HashedPassword: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Signup leaves the account unverified; the emailed token flips it.
	if err := s.verification.BeginEmailVerification(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to start email verification: %w", err)
	}

	return user, nil
}

// Login verifies the password of the user matching the identifier (email or
// username) and mints a session token. Unknown identifier and wrong password
// collapse into the same error so responses cannot be used to enumerate
// accounts.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	identifier := strings.TrimSpace(req.UsernameOrEmail)
	if identifier == "" || req.Password == "" {
		return nil, common.Errorf("missing credentials: %w", common.ErrValidation)
	}

	user, err := s.userRepo.FindByIdentifier(ctx, normalizeIdentifier(identifier))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueSessionToken(security.SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &LoginResult{User: user, Token: token}, nil
}

// normalizeIdentifier lowercases identifiers that look like email addresses
// so lookups match the casing applied at signup. Usernames pass through
// untouched.
func normalizeIdentifier(identifier string) string {
	if _, err := mail.ParseAddress(identifier); err == nil {
		return strings.ToLower(identifier)
	}
	return identifier
}

// CurrentUser resolves the user behind a verified session credential.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

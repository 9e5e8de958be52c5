package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"authstack/internal/common"
	"authstack/internal/common/security"
	"authstack/internal/domain/model"
	"authstack/internal/domain/repository"
	"authstack/internal/platform/mail"
)

// VerificationService owns the one-time token lifecycle for email
// verification and password reset. Raw tokens leave the process only inside
// outbound mail; the store holds their SHA-256 digests.
type VerificationService struct {
	userRepo  repository.UserRepository
	mailer    mail.Sender
	domain    string
	verifyTTL time.Duration
	resetTTL  time.Duration
}

func NewVerificationService(
	userRepo repository.UserRepository,
	mailer mail.Sender,
	domain string,
	verifyTTL, resetTTL time.Duration,
) *VerificationService {
	return &VerificationService{
		userRepo:  userRepo,
		mailer:    mailer,
		domain:    domain,
		verifyTTL: verifyTTL,
		resetTTL:  resetTTL,
	}
}

// BeginEmailVerification issues a fresh verification token for the user and
// mails the link. The mail send happens in the background so the signup
// response is not held hostage by the SMTP round trip.
func (s *VerificationService) BeginEmailVerification(ctx context.Context, user *model.User) error {
	raw, hash := security.NewOneTimeToken()
	expiry := time.Now().Add(s.verifyTTL)

	if err := s.userRepo.SetVerificationToken(ctx, user.ID, hash, expiry); err != nil {
		return fmt.Errorf("failed to store verification token: %w", err)
	}

	link := s.tokenLink("/verifyemail", raw)
	s.sendAsync(user.Email, "Verify your email", mail.VerificationBody(link))
	return nil
}

// VerifyEmail consumes a raw verification token. The lookup happens under
// the stored digest, and consumption clears the pair in the same conditional
// update, so a replayed token fails even when two requests race.
func (s *VerificationService) VerifyEmail(ctx context.Context, rawToken string) (*model.User, error) {
	if rawToken == "" {
		return nil, common.ErrInvalidOrExpiredToken
	}
	return s.userRepo.ConsumeVerificationToken(ctx, security.HashToken(rawToken), time.Now())
}

// RequestPasswordReset issues a reset token for the account behind the
// email. Unknown addresses are reported as success to keep the endpoint
// useless for enumeration.
func (s *VerificationService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByIdentifier(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	raw, hash := security.NewOneTimeToken()
	expiry := time.Now().Add(s.resetTTL)
	if err := s.userRepo.SetResetToken(ctx, user.ID, hash, expiry); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	link := s.tokenLink("/resetpassword", raw)
	s.sendAsync(user.Email, "Reset your password", mail.ResetBody(link))
	return nil
}

// ResetPassword consumes a raw reset token and replaces the password digest
// in the same conditional update that clears the token pair.
func (s *VerificationService) ResetPassword(ctx context.Context, rawToken, newPassword string) (*model.User, error) {
	if rawToken == "" {
		return nil, common.ErrInvalidOrExpiredToken
	}
	if len(newPassword) < minPasswordLength {
		return nil, common.Errorf("password must be at least %d characters: %w", minPasswordLength, common.ErrValidation)
	}

	hashedPassword, err := security.HashPassword(newPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.ConsumeResetToken(ctx, security.HashToken(rawToken), hashedPassword, time.Now())
}

func (s *VerificationService) tokenLink(path, rawToken string) string {
	return s.domain + path + "?token=" + url.QueryEscape(rawToken)
}

func (s *VerificationService) sendAsync(to, subject, body string) {
	if s.mailer == nil {
		return
	}
	go func() {
		if err := s.mailer.Send(to, subject, body); err != nil {
			log.Printf("failed to send %q mail to %s: %v", subject, to, err)
		}
	}()
}

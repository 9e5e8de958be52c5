package service

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"authstack/internal/common/security"
	"authstack/internal/domain/model"
	"authstack/internal/domain/repository"
	"authstack/internal/platform/mail/mock"

	"github.com/stretchr/testify/require"
)

type testEnv struct {
	repo         repository.UserRepository
	mailer       *mock.SenderMock
	tokens       *security.TokenManager
	verification *VerificationService
	auth         *AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo := repository.NewMemoryUserRepository()
	mailer := &mock.SenderMock{}
	tokens := security.NewTokenManager([]byte("test-secret"), 24*time.Hour)
	verification := NewVerificationService(repo, mailer, "http://localhost:3000", time.Hour, time.Hour)
	auth := NewAuthService(repo, tokens, verification)
	return &testEnv{
		repo:         repo,
		mailer:       mailer,
		tokens:       tokens,
		verification: verification,
		auth:         auth,
	}
}

func (e *testEnv) signupUser(t *testing.T, username, email, password string) *model.User {
	t.Helper()
	user, err := e.auth.Signup(context.Background(), SignupRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

func waitForMail(t *testing.T, mailer *mock.SenderMock, n int) []mock.Message {
	t.Helper()
	msgs, ok := mailer.WaitForMessages(n, 2*time.Second)
	require.True(t, ok, "expected %d mails, got %d", n, len(msgs))
	return msgs
}

// mailBySubject selects a recorded mail by subject. Sends run in background
// goroutines, so arrival order between different mails is not fixed.
func mailBySubject(t *testing.T, msgs []mock.Message, subject string) mock.Message {
	t.Helper()
	for _, msg := range msgs {
		if msg.Subject == subject {
			return msg
		}
	}
	t.Fatalf("no mail with subject %q recorded", subject)
	return mock.Message{}
}

// rawTokenFromBody pulls the raw one-time token out of an emailed link.
func rawTokenFromBody(t *testing.T, body string) string {
	t.Helper()
	start := strings.Index(body, "token=")
	require.GreaterOrEqual(t, start, 0, "mail body carries no token link")
	rest := body[start+len("token="):]
	if end := strings.IndexAny(rest, `"< `); end >= 0 {
		rest = rest[:end]
	}
	raw, err := url.QueryUnescape(rest)
	require.NoError(t, err)
	return raw
}

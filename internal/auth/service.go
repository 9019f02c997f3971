package auth

import (
	"context"

	"github.com/campuslex/campuslex/internal/shared"
)

// Service wraps authentication business rules.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate validates username/password credentials against the student
// store first, then the admin store. On a cross-kind username collision the
// student row silently shadows the admin row. A lookup miss and a password
// mismatch are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*shared.Principal, error) {
	if acct, err := s.repo.FindStudent(ctx, username); err == nil && VerifyPassword(password, acct.PasswordHash) {
		p := acct.Principal
		return &p, nil
	}
	if acct, err := s.repo.FindAdmin(ctx, username); err == nil && VerifyPassword(password, acct.PasswordHash) {
		p := acct.Principal
		return &p, nil
	}
	return nil, shared.ErrInvalidCredentials
}

// Resolve looks up the principal named by verified token claims. An unknown
// kind or a lookup miss yields shared.ErrInvalidToken.
func (s *Service) Resolve(ctx context.Context, username string, kind shared.Kind) (*shared.Principal, error) {
	var (
		acct *Account
		err  error
	)
	switch kind {
	case shared.KindStudent:
		acct, err = s.repo.FindStudent(ctx, username)
	case shared.KindAdmin:
		acct, err = s.repo.FindAdmin(ctx, username)
	default:
		return nil, shared.ErrInvalidToken
	}
	if err != nil {
		return nil, shared.ErrInvalidToken
	}
	p := acct.Principal
	return &p, nil
}

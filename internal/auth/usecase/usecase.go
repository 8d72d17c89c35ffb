package usecase

import (
	"context"

	"tastebud/internal/auth/domain"
)

// IdentityUsecase is the authenticated-user-identity signal the rest of the
// app consumes. It is injected, never a process-wide singleton, so identity
// transitions are explicit and testable.
type IdentityUsecase interface {
	// SignIn validates a token and makes its user the active identity
	SignIn(ctx context.Context, token string) (*domain.AuthUser, error)
	// SignOut clears the active identity
	SignOut()
	// Current returns the active identity, nil when anonymous
	Current() *domain.AuthUser
	// Subscribe streams the identity: the current value immediately, then
	// one emission per transition (sign-in, sign-out, account switch). The
	// channel closes when ctx is cancelled.
	Subscribe(ctx context.Context) <-chan *domain.AuthUser
	// ValidateToken validates a token without changing the active identity
	ValidateToken(ctx context.Context, token string) (*domain.AuthUser, error)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"

	"tastebud/internal/auth/domain"
)

// ErrInvalidToken is returned when a token fails validation
var ErrInvalidToken = errors.New("invalid or expired token")

// identityUsecase implements IdentityUsecase. Firebase ID tokens are the
// primary credential; HS256 tokens signed with the configured secret are
// accepted as a local-development fallback when Firebase is not configured.
type identityUsecase struct {
	authClient *firebaseauth.Client
	jwtSecret  string

	mu          sync.Mutex
	current     *domain.AuthUser
	subscribers map[chan *domain.AuthUser]struct{}
}

// NewIdentityUsecase creates a new IdentityUsecase. authClient may be nil
// when Firebase credentials are not configured.
func NewIdentityUsecase(authClient *firebaseauth.Client, jwtSecret string) IdentityUsecase {
	return &identityUsecase{
		authClient:  authClient,
		jwtSecret:   jwtSecret,
		subscribers: make(map[chan *domain.AuthUser]struct{}),
	}
}

func (u *identityUsecase) SignIn(ctx context.Context, token string) (*domain.AuthUser, error) {
	user, err := u.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}
	u.setCurrent(user)
	log.Printf("[AUTH] Signed in as %s", user.ID)
	return user, nil
}

func (u *identityUsecase) SignOut() {
	u.setCurrent(nil)
	log.Println("[AUTH] Signed out")
}

func (u *identityUsecase) Current() *domain.AuthUser {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.current
}

func (u *identityUsecase) Subscribe(ctx context.Context) <-chan *domain.AuthUser {
	ch := make(chan *domain.AuthUser, 1)

	u.mu.Lock()
	ch <- u.current
	u.subscribers[ch] = struct{}{}
	u.mu.Unlock()

	go func() {
		<-ctx.Done()
		u.mu.Lock()
		delete(u.subscribers, ch)
		close(ch)
		u.mu.Unlock()
	}()

	return ch
}

func (u *identityUsecase) ValidateToken(ctx context.Context, token string) (*domain.AuthUser, error) {
	if u.authClient != nil {
		decoded, err := u.authClient.VerifyIDToken(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
		user := &domain.AuthUser{ID: decoded.UID}
		if email, ok := decoded.Claims["email"].(string); ok {
			user.Email = email
		}
		if name, ok := decoded.Claims["name"].(string); ok {
			user.DisplayName = name
		}
		return user, nil
	}
	return u.validateLocalToken(token)
}

// validateLocalToken parses an HS256 token minted for local development
func (u *identityUsecase) validateLocalToken(token string) (*domain.AuthUser, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(u.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}
	user := &domain.AuthUser{ID: sub}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	return user, nil
}

// setCurrent swaps the active identity and notifies subscribers once per
// actual transition. Re-asserting the same identity is not a transition.
func (u *identityUsecase) setCurrent(user *domain.AuthUser) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if sameIdentity(u.current, user) {
		return
	}
	u.current = user

	for ch := range u.subscribers {
		// Drop the stale queued value so a slow subscriber only ever sees
		// the latest identity.
		select {
		case <-ch:
		default:
		}
		ch <- user
	}
}

func sameIdentity(a, b *domain.AuthUser) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}

package ports

import (
	"context"

	"github.com/cityweather/services/internal/core/domain"
)

// SignupInput carries the fields of a new account.
type SignupInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// AuthResult is a freshly minted token together with the account it belongs to.
type AuthResult struct {
	Token string
	User  domain.PublicUser
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
}

// TokenIssuer mints signed bearer tokens.
type TokenIssuer interface {
	Issue(user domain.User) (string, error)
}

// TokenVerifier checks a bearer token's signature and expiry.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}

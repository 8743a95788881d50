package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cityweather/services/internal/api/metrics"
	"github.com/cityweather/services/internal/core/domain"
	"github.com/cityweather/services/internal/core/ports"
)

// AuthService implements login and signup against a UserStore.
type AuthService struct {
	store  ports.UserStore
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(store ports.UserStore, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{store: store, tokens: tokens, log: log}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Warn().Str("username", username).Msg("login failed: unknown username")
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("login: %w", err)
	}

	if !passwordMatches(user.Password, password) {
		s.log.Warn().Str("username", username).Msg("login failed: wrong password")
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(*user)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Str("username", user.Username).Msg("login successful")
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &ports.AuthResult{Token: token, User: user.Public()}, nil
}

func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
	if in.Username == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, domain.ErrPasswordTooLong
		}
		return nil, fmt.Errorf("signup: hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("signup: generate id: %w", err)
	}

	user := domain.User{
		ID:        domain.UserID(id.String()),
		Username:  in.Username,
		Password:  string(hash),
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			s.log.Warn().Str("username", in.Username).Msg("signup failed: username exists")
			metrics.SignupsTotal.WithLabelValues("conflict").Inc()
			return nil, domain.ErrUserExists
		}
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("signup: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("signup: %w", err)
	}

	s.log.Info().Str("username", user.Username).Str("user_id", user.ID.String()).Msg("signup successful")
	metrics.SignupsTotal.WithLabelValues("success").Inc()
	return &ports.AuthResult{Token: token, User: user.Public()}, nil
}

// passwordMatches compares against a bcrypt hash, or byte-for-byte for
// legacy records that still hold the plaintext.
func passwordMatches(stored, given string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func isBcryptHash(s string) bool {
	if len(s) != 60 {
		return false
	}
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

package auth

import (
	"context"
	"log"

	"github.com/google/uuid"

	dto "task-desk.com/task-desk/internal/data_models"
	"task-desk.com/task-desk/internal/domain"
	"task-desk.com/task-desk/internal/services"
)

type AuthService struct {
	users    services.UserRepository
	tokens   *TokenProvider
	sessions SessionStore
}

func NewAuthService(users services.UserRepository, tokens *TokenProvider, sessions SessionStore) *AuthService {
	return &AuthService{users: users, tokens: tokens, sessions: sessions}
}

// Login verifies the password and hands out an access/refresh token pair.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (dto.TokenPairResponse, error) {
	var empty dto.TokenPairResponse

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		log.Printf("login: failed to fetch user by email: %v", err)
		return empty, domain.ErrUnexpected
	}
	if user == nil || !CheckPassword(user.PasswordHash, password) {
		return empty, domain.ErrInvalidCredentials
	}

	return s.issuePair(ctx, user)
}

// Refresh rotates the refresh token and issues a fresh access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (dto.TokenPairResponse, error) {
	var empty dto.TokenPairResponse

	userID, err := s.sessions.Resolve(ctx, refreshToken)
	if err != nil {
		log.Printf("refresh: session lookup failed: %v", err)
		return empty, domain.ErrUnexpected
	}
	if userID == "" {
		return empty, domain.ErrSessionNotFound
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		log.Printf("refresh: failed to fetch user %s: %v", userID, err)
		return empty, domain.ErrUnexpected
	}
	if user == nil {
		return empty, domain.ErrSessionNotFound
	}

	if err := s.sessions.Revoke(ctx, refreshToken); err != nil {
		log.Printf("refresh: failed to revoke old token: %v", err)
		return empty, domain.ErrUnexpected
	}

	return s.issuePair(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.sessions.Revoke(ctx, refreshToken); err != nil {
		log.Printf("logout: failed to revoke token: %v", err)
		return domain.ErrUnexpected
	}
	return nil
}

func (s *AuthService) issuePair(ctx context.Context, user *domain.User) (dto.TokenPairResponse, error) {
	var empty dto.TokenPairResponse

	access, err := s.tokens.Issue(user)
	if err != nil {
		log.Printf("auth: failed to sign access token: %v", err)
		return empty, domain.ErrUnexpected
	}

	refresh := uuid.NewString()
	if err := s.sessions.Save(ctx, refresh, user.ID); err != nil {
		log.Printf("auth: failed to save refresh token: %v", err)
		return empty, domain.ErrUnexpected
	}

	return dto.TokenPairResponse{AccessToken: access, RefreshToken: refresh}, nil
}

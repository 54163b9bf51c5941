package service

import (
	"context"
	"strconv"
	"strings"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/logger"
	"toolshare-backend/internal/repository"
	"toolshare-backend/internal/security"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, email, username, password, fullName, phone string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	username = strings.TrimSpace(username)
	if email == "" || username == "" || password == "" {
		return nil, apperr.Validation("email, username and password are required")
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, apperr.Conflict("email already registered")
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, apperr.Conflict("username already taken")
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		FullName:     fullName,
		Phone:        phone,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized("incorrect email or password")
		}
		return nil, err
	}
	if !security.VerifyPassword(password, user.PasswordHash) {
		return nil, apperr.Unauthorized("incorrect email or password")
	}
	if !user.IsActive {
		return nil, apperr.Forbidden("inactive user")
	}
	return s.issueTokens(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, apperr.Unauthorized("invalid refresh token")
	}
	if claims.Type != security.TokenTypeRefresh {
		return nil, apperr.Unauthorized("invalid refresh token")
	}
	user, err := s.resolveClaims(ctx, claims)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

func (s *authService) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	claims, err := s.tokens.ValidateToken(accessToken)
	if err != nil {
		return nil, apperr.Unauthorized("could not validate credentials")
	}
	if claims.Type != security.TokenTypeAccess {
		return nil, apperr.Unauthorized("could not validate credentials")
	}
	return s.resolveClaims(ctx, claims)
}

// resolveClaims looks the user up by id, falling back to the email claim for
// tokens minted before numeric subjects.
func (s *authService) resolveClaims(ctx context.Context, claims *security.UserClaims) (*domain.User, error) {
	var user *domain.User
	var err error
	if claims.UserID != 0 {
		user, err = s.userRepo.GetByID(ctx, claims.UserID)
	} else if _, convErr := strconv.Atoi(claims.Subject); convErr != nil && claims.Email != "" {
		user, err = s.userRepo.GetByEmail(ctx, claims.Email)
	} else {
		return nil, apperr.Unauthorized("could not validate credentials")
	}
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized("could not validate credentials")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperr.Forbidden("inactive user")
	}
	return user, nil
}

func (s *authService) issueTokens(user *domain.User) (*TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}

package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/utils"
)

var (
	// ErrUserExists is returned when registering an already-known email.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned on unknown email or bad password.
	// Both collapse to one error so the response does not reveal which.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// DefaultUserService implements UserService over a user repository and a
// session store.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Sessions utils.SessionStore
	TokenTTL time.Duration
}

func (s *DefaultUserService) Register(ctx context.Context, name, email, password string) error {
	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.Repo.Create(ctx, &userObj); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return fmt.Errorf("registration failed, please try again")
	}
	return nil
}

func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, userRec.IsAdmin, s.TokenTTL)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	now := time.Now()
	session := utils.Session{
		UserID:    userRec.ID,
		Email:     userRec.Email,
		IsAdmin:   userRec.IsAdmin,
		CreatedAt: now,
		ExpiresAt: now.Add(s.TokenTTL),
	}
	if err := s.Sessions.Save(ctx, utils.HashToken(token), session, s.TokenTTL); err != nil {
		utils.GetLogger().Error("Authenticate: failed to save session", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		Token: token,
		User:  SessionUser{ID: userRec.ID, IsAdmin: userRec.IsAdmin},
	}, nil
}

func (s *DefaultUserService) Logout(ctx context.Context, token string) error {
	return s.Sessions.Delete(ctx, utils.HashToken(token))
}

func (s *DefaultUserService) GetProfile(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

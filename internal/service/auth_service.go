package service

import (
	"context"

	"github.com/business-console-api/internal/auth"
	"github.com/business-console-api/internal/domain"
	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService определяет интерфейс входа операторов консоли
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthService создаёт новый экземпляр сервиса
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Несуществующий пользователь неотличим от неверного пароля
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserUUID:  user.UUID,
	}, nil
}

package authservice

import (
	"context"
	"errors"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/pkg/auth"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    UserRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(userRepo UserRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    userRepo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrUserNotFound        = errors.New("user not found")
)

type SignupInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     domain.Role
}

func (s *Service) Signup(ctx context.Context, input SignupInput) (*domain.User, *auth.TokenPair, error) {
	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, nil, err
	}
	if existing != nil {
		zap.L().Info("email already registered", zap.String("email", input.Email))
		return nil, nil, ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(input.Password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hashedPassword,
		Role:         input.Role,
	}
	user, err = s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, nil, err
	}

	tokens, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		zap.L().Error("can't generate tokens", zap.Error(err))
		return nil, nil, err
	}

	zap.L().Info("user registered", zap.String("email", user.Email), zap.String("role", string(user.Role)))
	return user, tokens, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, *auth.TokenPair, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		zap.L().Error("can't generate tokens", zap.Error(err))
		return nil, nil, err
	}

	zap.L().Info("user authenticated", zap.String("email", email))
	return user, tokens, nil
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	tokens, err := s.jwtService.GenerateTokenPair(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		zap.L().Error("can't generate tokens", zap.Error(err))
		return nil, err
	}
	return tokens, nil
}

func (s *Service) Profile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get profile", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

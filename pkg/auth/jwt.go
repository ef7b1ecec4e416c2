package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/foodconnect/api/internal/domain"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour

	issuer = "foodconnect"
)

type Claims struct {
	UserID int         `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.StandardClaims
}

type TokenPair struct {
	Token        string
	RefreshToken string
}

type JWTServiceInterface interface {
	GenerateTokenPair(userID int, email string, role domain.Role) (*TokenPair, error)
	ValidateToken(tokenString string) (*Claims, error)
	ValidateRefreshToken(tokenString string) (*Claims, error)
}

type JWTService struct {
	secret        []byte
	refreshSecret []byte
}

func NewJWTService(secret, refreshSecret string) *JWTService {
	return &JWTService{
		secret:        []byte(secret),
		refreshSecret: []byte(refreshSecret),
	}
}

func (s *JWTService) GenerateTokenPair(userID int, email string, role domain.Role) (*TokenPair, error) {
	token, err := s.sign(userID, email, role, s.secret, AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.sign(userID, email, role, s.refreshSecret, RefreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Token: token, RefreshToken: refreshToken}, nil
}

func (s *JWTService) sign(userID int, email string, role domain.Role, key []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(ttl).Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	return validate(tokenString, s.secret)
}

func (s *JWTService) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return validate(tokenString, s.refreshSecret)
}

func validate(tokenString string, key []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Issuer != issuer || !claims.Role.Valid() {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

package service

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apperrors "gearguard/pkg/errors"
)

type JwtCustomClaim struct {
	UserID uint64 `json:"userId"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateToken(userID uint64) (string, error)
	ValidateToken(tokenString string) (*JwtCustomClaim, error)
	GetTokenTTL() time.Duration
}

type jwtService struct {
	secretKey string
	tokenTTL  time.Duration
	logger    *zap.Logger
}

func NewJWTService(secretKey string, tokenTTL time.Duration, logger *zap.Logger) JWTService {
	return &jwtService{
		secretKey: secretKey,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (s *jwtService) GenerateToken(userID uint64) (string, error) {
	now := time.Now()
	claims := &JwtCustomClaim{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *jwtService) ValidateToken(tokenString string) (*JwtCustomClaim, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaim{}, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return []byte(s.secretKey), nil
		default:
			return nil, apperrors.ErrInvalidSigningMethod
		}
	})
	if err != nil {
		s.logger.Debug("token parse failed", zap.Error(err))
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*JwtCustomClaim)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, apperrors.ErrTokenExpired
	}
	if claims.IssuedAt != nil && claims.IssuedAt.Time.After(time.Now()) {
		return nil, apperrors.ErrTokenNotYetValid
	}

	return claims, nil
}

func (s *jwtService) GetTokenTTL() time.Duration {
	return s.tokenTTL
}

package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/loopline/loopline-services-gateway/apperrors"
	"github.com/loopline/loopline-services-gateway/auth/types"
	"github.com/loopline/loopline-services-gateway/jwtauth"
	"github.com/loopline/loopline-services-gateway/store"
)

type AuthService interface {
	ExchangeAuth0(ctx context.Context, req types.ExchangeRequest) (*types.ExchangeResponse, error)
	ValidateToken(tokenString string) (*jwtauth.JWTClaims, error)
	SaveState(ctx context.Context, key string) error
	ValidateState(ctx context.Context, key string) (bool, error)
}

type AuthServiceImpl struct {
	userStore    store.UserStore
	sessionStore store.SessionStore
	JwtSecret    string
}

func NewAuthServiceImpl(userStore store.UserStore, sessionStore store.SessionStore, jwtSecret string) *AuthServiceImpl {
	return &AuthServiceImpl{
		userStore:    userStore,
		sessionStore: sessionStore,
		JwtSecret:    jwtSecret,
	}
}

// ExchangeAuth0 turns a provider subject into an internal session: the user
// is looked up by email and created on first sign-in, then an internal JWT
// is issued for them.
func (s *AuthServiceImpl) ExchangeAuth0(ctx context.Context, req types.ExchangeRequest) (*types.ExchangeResponse, error) {
	user, err := s.userStore.GetByEmail(ctx, req.Email)
	if err != nil {
		username := req.Username
		if username == "" {
			username = types.EmailLocalPart(req.Email)
		}

		newUser := types.User{
			ID:        uuid.NewString(),
			Sub:       req.Sub,
			Email:     req.Email,
			Name:      req.Name,
			Username:  username,
			CreatedAt: time.Now().UTC(),
		}

		if err := s.userStore.Create(ctx, newUser); err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrInternalServer, err)
		}
		user = &newUser
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &types.ExchangeResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthServiceImpl) GenerateToken(user *types.User) (string, error) {
	claims := jwtauth.NewAccessClaims(user.Email, uuid.NewString(), time.Now())
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	token, err := t.SignedString([]byte(s.JwtSecret))
	if err != nil {
		log.Printf("could not sign JWT token: %v", err)
		return "", fmt.Errorf("%w: %w", apperrors.ErrTokenSignature, err)
	}
	return token, nil
}

func (s *AuthServiceImpl) ValidateToken(tokenString string) (*jwtauth.JWTClaims, error) {
	parsedToken, err := jwt.ParseWithClaims(tokenString, &jwtauth.JWTClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(s.JwtSecret), nil
	})

	if err != nil || !parsedToken.Valid {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidToken, err)
	}

	claims := parsedToken.Claims.(*jwtauth.JWTClaims)
	if claims.Type != "access" {
		return nil, apperrors.ErrInvalidTokenType
	}

	return claims, nil
}

func (s *AuthServiceImpl) SaveState(ctx context.Context, key string) error {
	return s.sessionStore.Create(ctx, key)
}

func (s *AuthServiceImpl) ValidateState(ctx context.Context, key string) (bool, error) {
	return s.sessionStore.IsStateExists(ctx, key)
}

package services_test

import (
	"context"
	"testing"

	"github.com/loopline/loopline-services-gateway/apperrors"
	"github.com/loopline/loopline-services-gateway/auth/types"
	"github.com/loopline/loopline-services-gateway/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserStore struct {
	users map[string]*types.User
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: map[string]*types.User{}}
}

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *stubUserStore) Create(ctx context.Context, user types.User) error {
	if _, ok := s.users[user.Email]; ok {
		return apperrors.ErrUserAlreadyExists
	}
	s.users[user.Email] = &user
	return nil
}

func (s *stubUserStore) Update(ctx context.Context, email string, update types.ProfileUpdate) (*types.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	if update.Username != "" {
		u.Username = update.Username
	}
	if update.Phone != "" {
		u.Phone = update.Phone
	}
	if update.DisplayName != "" {
		u.Name = update.DisplayName
	}
	if update.Bio != "" {
		u.Bio = update.Bio
	}
	return u, nil
}

func (s *stubUserStore) IsReady(ctx context.Context) error { return nil }
func (s *stubUserStore) Name() string                      { return "stub" }

func TestExchangeAuth0_CreatesUserOnFirstSignIn(t *testing.T) {
	userStore := newStubUserStore()
	svc := services.NewAuthServiceImpl(userStore, nil, "test-secret")

	resp, err := svc.ExchangeAuth0(context.Background(), types.ExchangeRequest{
		Sub:   "google-oauth2|12345",
		Email: "ada@example.com",
		Name:  "Ada",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada", resp.User.Username, "username defaults to email local-part")
	assert.NotEmpty(t, resp.User.ID)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Subject)
	assert.Equal(t, "access", claims.Type)
}

func TestExchangeAuth0_ReusesExistingUser(t *testing.T) {
	userStore := newStubUserStore()
	userStore.users["ada@example.com"] = &types.User{
		ID:       "fixed-id",
		Email:    "ada@example.com",
		Username: "ada_b",
		Phone:    "+15550100",
	}
	svc := services.NewAuthServiceImpl(userStore, nil, "test-secret")

	resp, err := svc.ExchangeAuth0(context.Background(), types.ExchangeRequest{
		Sub:   "google-oauth2|12345",
		Email: "ada@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", resp.User.ID)
	assert.Equal(t, "ada_b", resp.User.Username)
	assert.Equal(t, "+15550100", resp.User.Phone)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	svc := services.NewAuthServiceImpl(newStubUserStore(), nil, "test-secret")
	other := services.NewAuthServiceImpl(newStubUserStore(), nil, "other-secret")

	token, err := svc.GenerateToken(&types.User{Email: "ada@example.com"})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

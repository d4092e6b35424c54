package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/loopline/loopline-services-gateway/apperrors"
	authtypes "github.com/loopline/loopline-services-gateway/auth/types"
	"github.com/loopline/loopline-services-gateway/store"
)

var usernameRe = regexp.MustCompile(`^[a-z0-9_]{3,20}$`)

var ErrInvalidUsername = fmt.Errorf("username must be 3-20 lowercase letters, digits or underscores")

type UserService interface {
	Get(ctx context.Context, email string) (*authtypes.User, error)
	UpdateProfile(ctx context.Context, email string, update authtypes.ProfileUpdate) (*authtypes.User, error)
	Friends(ctx context.Context, email string) ([]*store.Friend, error)
	AddFriend(ctx context.Context, email, friendEmail string) error
}

type UserServiceImpl struct {
	userStore   store.UserStore
	friendStore store.FriendStore
}

func NewUserService(userStore store.UserStore, friendStore store.FriendStore) *UserServiceImpl {
	return &UserServiceImpl{
		userStore:   userStore,
		friendStore: friendStore,
	}
}

func (s *UserServiceImpl) Get(ctx context.Context, email string) (*authtypes.User, error) {
	return s.userStore.GetByEmail(ctx, email)
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, email string, update authtypes.ProfileUpdate) (*authtypes.User, error) {
	if update.Username != "" && !usernameRe.MatchString(update.Username) {
		return nil, ErrInvalidUsername
	}

	return s.userStore.Update(ctx, email, update)
}

func (s *UserServiceImpl) Friends(ctx context.Context, email string) ([]*store.Friend, error) {
	friends, err := s.friendStore.List(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInternalServer, err)
	}
	return friends, nil
}

func (s *UserServiceImpl) AddFriend(ctx context.Context, email, friendEmail string) error {
	if _, err := s.userStore.GetByEmail(ctx, friendEmail); err != nil {
		return err
	}

	return s.friendStore.Add(ctx, store.Friend{
		UserEmail:   email,
		FriendEmail: friendEmail,
		AddedAt:     time.Now().UTC(),
	})
}

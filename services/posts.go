package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/loopline/loopline-services-gateway/apperrors"
	"github.com/loopline/loopline-services-gateway/posts/types"
	"github.com/loopline/loopline-services-gateway/store"
)

type PostsService interface {
	List(ctx context.Context, email string) (*types.PostsResponse, error)
	Create(ctx context.Context, email string, req types.CreatePostRequest) (*types.Post, error)
}

type PostsServiceImpl struct {
	postStore store.PostStore
}

func NewPostsService(postStore store.PostStore) *PostsServiceImpl {
	return &PostsServiceImpl{
		postStore: postStore,
	}
}

func (s *PostsServiceImpl) List(ctx context.Context, email string) (*types.PostsResponse, error) {
	posts, err := s.postStore.ListByAuthor(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInternalServer, err)
	}
	return &types.PostsResponse{Posts: posts}, nil
}

func (s *PostsServiceImpl) Create(ctx context.Context, email string, req types.CreatePostRequest) (*types.Post, error) {
	post := types.Post{
		ID:          uuid.NewString(),
		AuthorEmail: email,
		Content:     req.Content,
		Rating:      req.Rating,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.postStore.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInternalServer, err)
	}
	return &post, nil
}

package types

import "time"

type Post struct {
	ID          string    `json:"id" dynamodbav:"id"`                     // Unique post identifier
	AuthorEmail string    `json:"author_email" dynamodbav:"author_email"` // Post author email
	Content     string    `json:"content" dynamodbav:"content"`           // Post body
	Rating      int       `json:"rating,omitempty" dynamodbav:"rating"`   // 1-5 when the post is a review
	CreatedAt   time.Time `json:"created_at" dynamodbav:"created_at"`     // Time of creation
}

type CreatePostRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
	Rating  int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

type PostsResponse struct {
	Posts []*Post `json:"posts"`
}

package types

import "time"

type User struct {
	ID        string    `json:"id" dynamodbav:"id"`
	Sub       string    `json:"sub" dynamodbav:"sub"`
	Email     string    `json:"email" dynamodbav:"email"`
	Name      string    `json:"name" dynamodbav:"name"`
	Username  string    `json:"username" dynamodbav:"username"`
	Phone     string    `json:"phone" dynamodbav:"phone"`
	Bio       string    `json:"bio" dynamodbav:"bio"`
	AvatarURL string    `json:"avatar_url" dynamodbav:"avatar_url"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
}

// Session is the appSession cookie payload. Its lifetime is bounded by the
// provider token expiry, not by the internal JWT.
type Session struct {
	User        Auth0Profile `json:"user"`
	AccessToken string       `json:"accessToken"`
	ExpiresAt   int64        `json:"expiresAt"`
}

type ExchangeRequest struct {
	Sub      string `json:"sub" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type ExchangeResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ProfileUpdate struct {
	DisplayName string `json:"display_name" binding:"omitempty,max=50"`
	Bio         string `json:"bio" binding:"omitempty,max=500"`
	Phone       string `json:"phone" binding:"omitempty,e164"`
	Username    string `json:"username" binding:"omitempty,min=3,max=20"`
}

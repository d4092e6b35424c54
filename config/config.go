package config

import (
	"fmt"
	"os"
)

type Auth0Config struct {
	Domain        string
	ClientID      string
	ClientSecret  string
	IssuerBaseURL string
	RedirectURI   string
}

type JWTConfig struct {
	SecretKey string
}

type DynamoDBConfig struct {
	UsersTableName      string
	PostsTableName      string
	EventsTableName     string
	AttendeesTableName  string
	FriendsTableName    string
	AuthEventsTableName string
}

type RedisConfig struct {
	HOST string
}

type AWSConfig struct {
	Region string
}

type CorsConfig struct {
	Origins string
}

// InternalConfig points the callback's best-effort side channels at the
// internal HTTP endpoints. In a single-gateway deployment both URLs point
// back at this process.
type InternalConfig struct {
	ExchangeURL string
	AdminLogURL string
}

type Config struct {
	Env         string
	GatewayAddr string
	FrontendURL string
	Tracing     bool

	Auth0Config    *Auth0Config
	JWTConfig      *JWTConfig
	DynamoDBConfig *DynamoDBConfig
	RedisConfig    *RedisConfig
	AWSConfig      *AWSConfig
	CorsConfig     *CorsConfig
	InternalConfig *InternalConfig
}

func LoadConfig() Config {
	issuer := envOr("AUTH0_ISSUER_BASE_URL", "")
	if issuer == "" {
		if d := os.Getenv("AUTH0_DOMAIN"); d != "" {
			issuer = "https://" + d
		}
	}

	baseURL := envOr("BASE_URL", "http://localhost:8080")

	return Config{
		Env:         envOr("ENV", "DEV"),
		GatewayAddr: envOr("GATEWAY_ADDR", ":8080"),
		FrontendURL: envOr("FRONTEND_URL", "http://localhost:3000"),
		Tracing:     os.Getenv("TRACING") == "true",

		Auth0Config: &Auth0Config{
			Domain:        os.Getenv("AUTH0_DOMAIN"),
			ClientID:      os.Getenv("AUTH0_CLIENT_ID"),
			ClientSecret:  os.Getenv("AUTH0_CLIENT_SECRET"),
			IssuerBaseURL: issuer,
			RedirectURI:   baseURL + "/api/auth/callback",
		},
		JWTConfig: &JWTConfig{
			SecretKey: os.Getenv("JWT_SECRET"),
		},
		DynamoDBConfig: &DynamoDBConfig{
			UsersTableName:      envOr("DYNAMO_USERS_TABLE", "loopline-users"),
			PostsTableName:      envOr("DYNAMO_POSTS_TABLE", "loopline-posts"),
			EventsTableName:     envOr("DYNAMO_EVENTS_TABLE", "loopline-events"),
			AttendeesTableName:  envOr("DYNAMO_ATTENDEES_TABLE", "loopline-event-attendees"),
			FriendsTableName:    envOr("DYNAMO_FRIENDS_TABLE", "loopline-friends"),
			AuthEventsTableName: envOr("DYNAMO_AUTH_EVENTS_TABLE", "loopline-auth-events"),
		},
		RedisConfig: &RedisConfig{
			HOST: envOr("REDIS_HOST", "localhost:6379"),
		},
		AWSConfig: &AWSConfig{
			Region: envOr("AWS_REGION", "us-east-1"),
		},
		CorsConfig: &CorsConfig{
			Origins: envOr("CORS_ORIGINS", "http://localhost:3000"),
		},
		InternalConfig: &InternalConfig{
			ExchangeURL: envOr("EXCHANGE_URL", baseURL+"/api/auth/exchange-auth0"),
			AdminLogURL: envOr("ADMIN_LOG_URL", baseURL+"/api/admin/users"),
		},
	}
}

// ValidateAllSecrets refuses to start with missing credentials. Secrets have
// no fallback values on purpose: empty means misconfigured, not "use a
// default".
func (c *Config) ValidateAllSecrets() error {
	required := map[string]string{
		"AUTH0_DOMAIN":        c.Auth0Config.Domain,
		"AUTH0_CLIENT_ID":     c.Auth0Config.ClientID,
		"AUTH0_CLIENT_SECRET": c.Auth0Config.ClientSecret,
		"JWT_SECRET":          c.JWTConfig.SecretKey,
	}
	for name, val := range required {
		if val == "" {
			return fmt.Errorf("missing required secret %s", name)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

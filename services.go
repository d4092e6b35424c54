package main

import (
	"context"
	"log"
	"time"

	"github.com/loopline/loopline-services-gateway/auth/oauth"
	authtypes "github.com/loopline/loopline-services-gateway/auth/types"
	"github.com/loopline/loopline-services-gateway/services"
	"github.com/loopline/loopline-services-gateway/services/caching"
	"github.com/loopline/loopline-services-gateway/store"
	"github.com/sony/gobreaker/v2"
)

type Stores struct {
	users      store.UserStore
	sessions   store.SessionStore
	posts      store.PostStore
	events     store.EventStore
	friends    store.FriendStore
	authEvents store.AuthEventStore
}

type Services struct {
	Auth   services.AuthService
	Posts  services.PostsService
	Events services.EventsService
	Users  services.UserService

	Exchanger   services.TokenExchanger
	AdminLogger services.AdminLogger

	Provider oauth.Provider

	Stores *Stores
}

type Shutdowner interface {
	Shutdown(context.Context) error
}

func BuildServices(app *App) *Services {
	usrStore := store.NewUserStore(app.DynamoDB, app.Config.DynamoDBConfig.UsersTableName)
	sessStore := store.NewRedisStoreImpl(app.Redis)
	postStore := store.NewPostStore(app.DynamoDB, app.Config.DynamoDBConfig.PostsTableName)
	eventStore := store.NewEventStore(app.DynamoDB, app.Config.DynamoDBConfig.EventsTableName, app.Config.DynamoDBConfig.AttendeesTableName)
	friendStore := store.NewFriendStore(app.DynamoDB, app.Config.DynamoDBConfig.FriendsTableName)
	authEventStore := store.NewAuthEventStore(app.DynamoDB, app.Config.DynamoDBConfig.AuthEventsTableName)

	provider := oauth.NewAuth0Provider(app.Config.Auth0Config)

	cacheSvc := caching.NewRedisCachingService(app.Redis)
	authSvc := services.NewAuthServiceImpl(usrStore, sessStore, app.Config.JWTConfig.SecretKey)

	exchangeBreaker := gobreaker.NewCircuitBreaker[*authtypes.ExchangeResponse](gobreaker.Settings{
		Name: "internal:exchange-auth0",

		MaxRequests: 5,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("circuit breaker %s: %s -> %s", name, from, to)
		},
	})
	exchanger := services.NewHTTPTokenExchanger(app.Config.InternalConfig.ExchangeURL, exchangeBreaker)
	adminLogger := services.NewHTTPAdminLogger(app.Config.InternalConfig.AdminLogURL)

	return &Services{
		Auth:   authSvc,
		Posts:  services.NewPostsService(postStore),
		Events: services.NewEventsService(eventStore, cacheSvc),
		Users:  services.NewUserService(usrStore, friendStore),

		Exchanger:   exchanger,
		AdminLogger: adminLogger,

		Provider: provider,

		Stores: &Stores{
			users:      usrStore,
			sessions:   sessStore,
			posts:      postStore,
			events:     eventStore,
			friends:    friendStore,
			authEvents: authEventStore,
		},
	}
}

func (s *Services) Shutdown(ctx context.Context) error {
	log.Println("shutting down services")

	if s.Stores != nil {
		if err := s.Stores.Shutdown(ctx); err != nil {
			log.Printf("stores shutdown error: %v", err)
		}
	}

	log.Println("services shutdown complete")
	return nil
}

func (s *Stores) Shutdown(ctx context.Context) error {
	log.Println("shutting down stores")

	shutdownIfPossible := func(name string, v any) {
		if sh, ok := v.(Shutdowner); ok {
			if err := sh.Shutdown(ctx); err != nil {
				log.Printf("%s store shutdown error: %v", name, err)
			}
		}
	}

	shutdownIfPossible("users", s.users)
	shutdownIfPossible("sessions", s.sessions)
	shutdownIfPossible("posts", s.posts)
	shutdownIfPossible("events", s.events)

	log.Println("stores shutdown complete")
	return nil
}

package store

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// AuthEvent is one admin-log record of a completed provider sign-in.
type AuthEvent struct {
	ID        string    `json:"id" dynamodbav:"id"`
	Sub       string    `json:"sub" dynamodbav:"sub"`
	Email     string    `json:"email" dynamodbav:"email"`
	Provider  string    `json:"provider" dynamodbav:"provider"`
	LoggedAt  time.Time `json:"logged_at" dynamodbav:"logged_at"`
	UserAgent string    `json:"user_agent,omitempty" dynamodbav:"user_agent"`
}

type AuthEventStore interface {
	Append(ctx context.Context, event AuthEvent) error
}

type DynamoDbAuthEventStore struct {
	Client    *dynamodb.Client
	TableName string
}

func NewAuthEventStore(dbClient *dynamodb.Client, tableName string) *DynamoDbAuthEventStore {
	return &DynamoDbAuthEventStore{
		Client:    dbClient,
		TableName: tableName,
	}
}

func (s *DynamoDbAuthEventStore) Append(ctx context.Context, event AuthEvent) error {
	item, err := attributevalue.MarshalMap(event)
	if err != nil {
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.TableName),
		Item:      item,
	})
	return err
}

package store

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamoTypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type Friend struct {
	UserEmail   string    `json:"user_email" dynamodbav:"user_email"`
	FriendEmail string    `json:"friend_email" dynamodbav:"friend_email"`
	AddedAt     time.Time `json:"added_at" dynamodbav:"added_at"`
}

type FriendStore interface {
	List(ctx context.Context, email string) ([]*Friend, error)
	Add(ctx context.Context, friend Friend) error
}

type DynamoDbFriendStore struct {
	Client    *dynamodb.Client
	TableName string
}

func NewFriendStore(dbClient *dynamodb.Client, tableName string) *DynamoDbFriendStore {
	return &DynamoDbFriendStore{
		Client:    dbClient,
		TableName: tableName,
	}
}

func (s *DynamoDbFriendStore) List(ctx context.Context, email string) ([]*Friend, error) {
	out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              &s.TableName,
		KeyConditionExpression: aws.String("user_email = :email"),
		ExpressionAttributeValues: map[string]dynamoTypes.AttributeValue{
			":email": &dynamoTypes.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}

	friends := make([]*Friend, 0, len(out.Items))
	for _, item := range out.Items {
		var friend Friend
		if err := attributevalue.UnmarshalMap(item, &friend); err != nil {
			return nil, err
		}
		friends = append(friends, &friend)
	}

	return friends, nil
}

// Add is an idempotent put: re-adding an existing friend is not an error.
func (s *DynamoDbFriendStore) Add(ctx context.Context, friend Friend) error {
	item, err := attributevalue.MarshalMap(friend)
	if err != nil {
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.TableName),
		Item:      item,
	})
	return err
}

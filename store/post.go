package store

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamoTypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/loopline/loopline-services-gateway/posts/types"
)

type PostStore interface {
	ListByAuthor(ctx context.Context, email string) ([]*types.Post, error)
	Create(ctx context.Context, post types.Post) error
}

type DynamoDbPostStore struct {
	Client    *dynamodb.Client
	TableName string
}

func NewPostStore(dbClient *dynamodb.Client, tableName string) *DynamoDbPostStore {
	return &DynamoDbPostStore{
		Client:    dbClient,
		TableName: tableName,
	}
}

func (s *DynamoDbPostStore) ListByAuthor(ctx context.Context, email string) ([]*types.Post, error) {
	out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              &s.TableName,
		IndexName:              aws.String("author_email-index"),
		KeyConditionExpression: aws.String("author_email = :email"),
		ExpressionAttributeValues: map[string]dynamoTypes.AttributeValue{
			":email": &dynamoTypes.AttributeValueMemberS{Value: email},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	posts := make([]*types.Post, 0, len(out.Items))
	for _, item := range out.Items {
		var post types.Post
		if err := attributevalue.UnmarshalMap(item, &post); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}

	return posts, nil
}

func (s *DynamoDbPostStore) Create(ctx context.Context, post types.Post) error {
	item, err := attributevalue.MarshalMap(post)
	if err != nil {
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.TableName),
		Item:      item,
	})
	return err
}

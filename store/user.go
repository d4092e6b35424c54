package store

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamoTypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/loopline/loopline-services-gateway/apperrors"
	"github.com/loopline/loopline-services-gateway/auth/types"
	"github.com/loopline/loopline-services-gateway/health"
)

type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*types.User, error)
	Create(ctx context.Context, user types.User) error
	Update(ctx context.Context, email string, update types.ProfileUpdate) (*types.User, error)

	health.ReadinessCheck
}

type DynamoDbUserStore struct {
	Client    *dynamodb.Client
	TableName string
}

func NewUserStore(dbClient *dynamodb.Client, tableName string) *DynamoDbUserStore {
	return &DynamoDbUserStore{
		Client:    dbClient,
		TableName: tableName,
	}
}

func (s *DynamoDbUserStore) IsReady(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	_, err := s.Client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.TableName),
	})

	return err
}

func (s *DynamoDbUserStore) Name() string {
	return "UserStore[users]"
}

func (s *DynamoDbUserStore) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	res, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.TableName),
		Key: map[string]dynamoTypes.AttributeValue{
			"email": &dynamoTypes.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil || res.Item == nil {
		return nil, apperrors.ErrUserNotFound
	}

	var user types.User
	if err := attributevalue.UnmarshalMap(res.Item, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *DynamoDbUserStore) Create(ctx context.Context, user types.User) error {
	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.TableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(email)"),
	})
	if err != nil {
		var ccf *dynamoTypes.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return apperrors.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// Update performs a partial update: only fields set in the request are
// written.
func (s *DynamoDbUserStore) Update(ctx context.Context, email string, update types.ProfileUpdate) (*types.User, error) {
	names := map[string]string{}
	values := map[string]dynamoTypes.AttributeValue{}
	expr := ""

	set := func(attr, placeholder, value string) {
		if expr == "" {
			expr = "SET "
		} else {
			expr += ", "
		}
		expr += "#" + placeholder + " = :" + placeholder
		names["#"+placeholder] = attr
		values[":"+placeholder] = &dynamoTypes.AttributeValueMemberS{Value: value}
	}

	if update.DisplayName != "" {
		set("name", "n", update.DisplayName)
	}
	if update.Bio != "" {
		set("bio", "b", update.Bio)
	}
	if update.Phone != "" {
		set("phone", "p", update.Phone)
	}
	if update.Username != "" {
		set("username", "u", update.Username)
	}

	if expr == "" {
		return s.GetByEmail(ctx, email)
	}

	res, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TableName),
		Key: map[string]dynamoTypes.AttributeValue{
			"email": &dynamoTypes.AttributeValueMemberS{Value: email},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ConditionExpression:       aws.String("attribute_exists(email)"),
		ReturnValues:              dynamoTypes.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *dynamoTypes.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	var user types.User
	if err := attributevalue.UnmarshalMap(res.Attributes, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

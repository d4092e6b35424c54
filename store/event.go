package store

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamoTypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/loopline/loopline-services-gateway/apperrors"
	"github.com/loopline/loopline-services-gateway/events/types"
)

type EventStore interface {
	List(ctx context.Context) ([]*types.Event, error)
	GetByID(ctx context.Context, id string) (*types.Event, error)
	Join(ctx context.Context, attendee types.Attendee) error
}

type DynamoDbEventStore struct {
	Client             *dynamodb.Client
	TableName          string
	AttendeesTableName string
}

func NewEventStore(dbClient *dynamodb.Client, tableName, attendeesTableName string) *DynamoDbEventStore {
	return &DynamoDbEventStore{
		Client:             dbClient,
		TableName:          tableName,
		AttendeesTableName: attendeesTableName,
	}
}

// List returns one scan page of events. The discovery radius filter runs in
// the service layer; the table stays small enough for a single page.
func (s *DynamoDbEventStore) List(ctx context.Context) ([]*types.Event, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
		Limit:     aws.Int32(200),
	})
	if err != nil {
		return nil, err
	}

	events := make([]*types.Event, 0, len(out.Items))
	for _, item := range out.Items {
		var event types.Event
		if err := attributevalue.UnmarshalMap(item, &event); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	return events, nil
}

func (s *DynamoDbEventStore) GetByID(ctx context.Context, id string) (*types.Event, error) {
	res, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.TableName),
		Key: map[string]dynamoTypes.AttributeValue{
			"id": &dynamoTypes.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil || res.Item == nil {
		return nil, apperrors.ErrEventNotFound
	}

	var event types.Event
	if err := attributevalue.UnmarshalMap(res.Item, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *DynamoDbEventStore) Join(ctx context.Context, attendee types.Attendee) error {
	item, err := attributevalue.MarshalMap(attendee)
	if err != nil {
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.AttendeesTableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(event_id) AND attribute_not_exists(email)"),
	})
	if err != nil {
		var ccf *dynamoTypes.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return apperrors.ErrAlreadyJoined
		}
		return err
	}
	return nil
}

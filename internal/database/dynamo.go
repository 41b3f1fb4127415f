package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// API is the slice of the DynamoDB client the service actually calls.
// Handlers and tests depend on this interface, not the SDK client.
type API interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

var _ API = (*dynamodb.Client)(nil)

// Client is the shared store handle: one SDK client constructed at startup
// plus the two table names it serves. It is passed explicitly into the
// handlers, never reached through a package global.
type Client struct {
	DB              API
	StudentsTable   string
	AttendanceTable string
}

// New wraps an already-loaded AWS config. Construction cannot fail; a
// store that is unreachable surfaces on the first call instead.
func New(awsCfg aws.Config, studentsTable, attendanceTable string) *Client {
	return &Client{
		DB:              dynamodb.NewFromConfig(awsCfg),
		StudentsTable:   studentsTable,
		AttendanceTable: attendanceTable,
	}
}

// ScanAll reads every item in table, following LastEvaluatedKey until the
// scan is exhausted so large collections are never silently truncated at
// the store's page ceiling.
func (c *Client) ScanAll(ctx context.Context, table string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue

	for {
		out, err := c.DB.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return items, nil
}

// Put marshals item and writes it, replacing any existing item with the
// same key wholesale.
func (c *Client) Put(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = c.DB.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	return err
}

// Delete removes the item whose string key attribute keyAttr equals
// keyValue. Deleting an absent key is a successful no-op.
func (c *Client) Delete(ctx context.Context, table, keyAttr, keyValue string) error {
	_, err := c.DB.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			keyAttr: &types.AttributeValueMemberS{Value: keyValue},
		},
	})
	return err
}

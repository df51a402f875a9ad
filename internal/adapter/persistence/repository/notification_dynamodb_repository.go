package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistica_cotizaciones/internal/domain/entities"
	"logistica_cotizaciones/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultNotificationsTable = "notifications"
	NotificationsUserIndex    = "user_id-index"

	tableReadyTimeout = 2 * time.Minute
)

type notificationItem struct {
	ID        string `dynamodbav:"id"`
	UserID    int64  `dynamodbav:"user_id"`
	Type      string `dynamodbav:"type"`
	Title     string `dynamodbav:"title"`
	Message   string `dynamodbav:"message"`
	Link      string `dynamodbav:"link"`
	Read      bool   `dynamodbav:"read"`
	CreatedAt string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists the user inbox in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI user_id-index: user_id (number) + created_at (string, RFC3339Nano)
//
// created_at is stored in UTC with a fixed layout so the range key sorts
// chronologically.
type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client, tableName string) *NotificationDynamoRepository {
	if tableName == "" {
		tableName = DefaultNotificationsTable
	}
	return &NotificationDynamoRepository{ddb: ddb, tableName: tableName}
}

// NotificationsTableInput describes the inbox table and its per-user index.
func NotificationsTableInput(tableName string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName: aws.String(tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("user_id"), AttributeType: types.ScalarAttributeTypeN},
			{AttributeName: aws.String("created_at"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(NotificationsUserIndex),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("user_id"), KeyType: types.KeyTypeHash},
					{AttributeName: aws.String("created_at"), KeyType: types.KeyTypeRange},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
		BillingMode: types.BillingModePayPerRequest,
	}
}

// EnsureTable creates the inbox table when it does not exist yet.
func (r *NotificationDynamoRepository) EnsureTable(ctx context.Context) error {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)})
	if err == nil {
		return nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to describe table %s: %w", r.tableName, err)
	}

	if _, err := r.ddb.CreateTable(ctx, NotificationsTableInput(r.tableName)); err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return nil
		}
		return fmt.Errorf("failed to create table %s: %w", r.tableName, err)
	}

	waiter := dynamodb.NewTableExistsWaiter(r.ddb)
	return waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)}, tableReadyTimeout)
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Notification, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            notificationKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Notification{}, err
	}
	if len(out.Item) == 0 {
		return entities.Notification{}, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

// ListByUserID returns the newest notifications of a user first.
func (r *NotificationDynamoRepository) ListByUserID(ctx context.Context, userID int64, limit int) ([]entities.Notification, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("user_id").Equal(expression.Value(userID))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(NotificationsUserIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(false),
	}
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}

	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, err
	}

	var items []notificationItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	list := make([]entities.Notification, 0, len(items))
	for _, it := range items {
		list = append(list, fromNotificationItem(it))
	}
	return list, nil
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #read = :read"
		vals := map[string]types.AttributeValue{
			":read": &types.AttributeValueMemberBOOL{Value: true},
		}
		names := map[string]string{
			"#read": "read",
		}
		return expr, vals, names
	})
}

// MarkAllRead flags every unread notification of the user and reports how
// many changed.
func (r *NotificationDynamoRepository) MarkAllRead(ctx context.Context, userID int64) (int, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("user_id").Equal(expression.Value(userID))).
		WithFilter(expression.Name("read").Equal(expression.Value(false))).
		WithProjection(expression.NamesList(expression.Name("id"))).
		Build()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(NotificationsUserIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ProjectionExpression:      expr.Projection(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	updated := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return updated, err
		}
		for _, raw := range page.Items {
			var it notificationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return updated, err
			}
			n, err := r.MarkRead(ctx, it.ID)
			if err != nil {
				return updated, err
			}
			if n.ID != "" {
				updated++
			}
		}
	}
	return updated, nil
}

func (r *NotificationDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Notification, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       notificationKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Notification{}, nil
	}
	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func notificationKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// sortableTimeLayout is RFC3339 with a fixed-width fraction.
const sortableTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.UTC().Format(sortableTimeLayout),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Notification{
		ID:        it.ID,
		UserID:    it.UserID,
		Type:      entities.NotificationType(it.Type),
		Title:     it.Title,
		Message:   it.Message,
		Link:      it.Link,
		Read:      it.Read,
		CreatedAt: createdAt.UTC(),
	}
}

package remotestore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/uitweaks/tweakstack/config"
)

const (
	tablePartitionKey = "namespace"
	tableSortKey      = "key"
	dynamoDBValueAttr = "value"
	dynamoDBNamespace = "tweaks"
)

// dynamoDBStore implements kvStore for DynamoDB. All tweak entries live in a
// single table under a fixed partition key, with the prefixed tweak key as
// the sort key - the same single-table layout the rest of the tooling uses.
type dynamoDBStore struct {
	client        *dynamodb.Client
	table         string
	context       context.Context
	cancelContext context.CancelFunc
}

// NewDynamoDBProvider creates a persisted tweak provider backed by DynamoDB.
// The AWS region and credentials come from the standard AWS configuration
// sources; an endpoint URL can be set in the config for local testing.
func NewDynamoDBProvider(dbConfig config.DynamoDBConfig, loggers ldlog.Loggers) (*Provider, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, err
	}

	var optFns []func(*dynamodb.Options)
	if dbConfig.URL.IsDefined() {
		endpoint := dbConfig.URL.String()
		optFns = append(optFns, func(o *dynamodb.Options) {
			o.EndpointResolver = dynamodb.EndpointResolverFromURL(endpoint)
		})
	}

	ctx, cancelCtx := context.WithCancel(context.Background())
	store := &dynamoDBStore{
		client:        dynamodb.NewFromConfig(awsCfg, optFns...),
		table:         dbConfig.TableName,
		context:       ctx,
		cancelContext: cancelCtx,
	}

	provider := newProvider(store, dbConfig.Prefix, loggers)
	provider.loggers.SetPrefix("DynamoDBTweakStore:")
	provider.loggers.Infof(logMsgUsingDynamoDB, store.table, provider.prefix)
	return provider, nil
}

func (s *dynamoDBStore) get(key string) (string, bool, error) {
	result, err := s.client.GetItem(s.context, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		ConsistentRead: aws.Bool(true),
		Key:            s.itemKey(key),
		// "value" is a DynamoDB reserved word, so it has to go through an
		// expression attribute name.
		ExpressionAttributeNames: map[string]string{"#0": dynamoDBValueAttr},
		ProjectionExpression:     aws.String("#0"),
	})
	if err != nil {
		return "", false, err
	}
	if len(result.Item) == 0 {
		return "", false, nil
	}
	if sValue, ok := result.Item[dynamoDBValueAttr].(*types.AttributeValueMemberS); ok {
		return sValue.Value, true, nil
	}
	return "", false, nil
}

func (s *dynamoDBStore) set(key string, value string) error {
	_, err := s.client.PutItem(s.context, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item: map[string]types.AttributeValue{
			tablePartitionKey: attrValueOfString(dynamoDBNamespace),
			tableSortKey:      attrValueOfString(key),
			dynamoDBValueAttr: attrValueOfString(value),
		},
	})
	return err
}

func (s *dynamoDBStore) delete(key string) error {
	_, err := s.client.DeleteItem(s.context, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       s.itemKey(key),
	})
	return err
}

func (s *dynamoDBStore) close() error {
	s.cancelContext()
	return nil
}

func (s *dynamoDBStore) itemKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		tablePartitionKey: attrValueOfString(dynamoDBNamespace),
		tableSortKey:      attrValueOfString(key),
	}
}

func attrValueOfString(value string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: value}
}

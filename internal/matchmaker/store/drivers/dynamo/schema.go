package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const tableWaitTimeout = 2 * time.Minute

// ApplyMigrations creates any missing table together with its indexes.
// Existing tables are left alone, including one that lacks an index: that
// case is served by the degraded scan path instead.
func (s *Store) ApplyMigrations() error {
	ctx, cancel := context.WithTimeout(context.Background(), tableWaitTimeout)
	defer cancel()

	for _, def := range s.tableDefinitions() {
		if err := s.ensureTable(ctx, def); err != nil {
			return fmt.Errorf("ensure table %s: %w", aws.ToString(def.TableName), err)
		}
	}
	return nil
}

func (s *Store) ensureTable(ctx context.Context, def *dynamodb.CreateTableInput) error {
	_, err := s.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName})
	if err == nil {
		return nil
	}
	var missing *types.ResourceNotFoundException
	if !errors.As(err, &missing) {
		return mapErr(err)
	}

	if _, err := s.api.CreateTable(ctx, def); err != nil {
		var inUse *types.ResourceInUseException
		if !errors.As(err, &inUse) {
			return mapErr(err)
		}
	}

	waiter := dynamodb.NewTableExistsWaiter(s.api)
	return waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName}, tableWaitTimeout)
}

func (s *Store) tableDefinitions() []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		{
			TableName:            aws.String(s.tables.profiles),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{attr("id", types.ScalarAttributeTypeS)},
			KeySchema:            []types.KeySchemaElement{hashKey("id")},
		},
		{
			TableName:   aws.String(s.tables.matches),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				attr("id", types.ScalarAttributeTypeS),
				attr("p1_id", types.ScalarAttributeTypeS),
				attr("p2_id", types.ScalarAttributeTypeS),
				attr("created_at", types.ScalarAttributeTypeN),
			},
			KeySchema: []types.KeySchemaElement{hashKey("id")},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				index(indexMatchesP1, "p1_id", "created_at"),
				index(indexMatchesP2, "p2_id", "created_at"),
			},
		},
		{
			TableName:   aws.String(s.tables.submissions),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				attr("id", types.ScalarAttributeTypeS),
				attr("kind", types.ScalarAttributeTypeS),
				attr("created_at", types.ScalarAttributeTypeN),
			},
			KeySchema: []types.KeySchemaElement{hashKey("id")},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				index(indexSubmissions, "kind", "created_at"),
			},
		},
	}
}

func attr(name string, t types.ScalarAttributeType) types.AttributeDefinition {
	return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: t}
}

func hashKey(name string) types.KeySchemaElement {
	return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}
}

func index(name, hash, rng string) types.GlobalSecondaryIndex {
	return types.GlobalSecondaryIndex{
		IndexName: aws.String(name),
		KeySchema: []types.KeySchemaElement{
			hashKey(hash),
			{AttributeName: aws.String(rng), KeyType: types.KeyTypeRange},
		},
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}

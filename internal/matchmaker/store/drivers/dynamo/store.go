// Package dynamo is the DynamoDB store driver. Matches carry one global
// secondary index per participant column; submissions share one table keyed
// by id with a kind/created_at index.
package dynamo

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// API is the subset of *dynamodb.Client the driver calls.
type API interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var _ API = (*dynamodb.Client)(nil)

type Config struct {
	Region string

	// Endpoint overrides the service endpoint, e.g. for dynamodb-local.
	Endpoint string

	TablePrefix string
}

type tables struct {
	profiles    string
	matches     string
	submissions string
}

const (
	indexMatchesP1   = "p1_id-index"
	indexMatchesP2   = "p2_id-index"
	indexSubmissions = "kind-created_at-index"
)

type Store struct {
	api    API
	tables tables
	opts   store.Options
}

var _ store.Store = (*Store)(nil)

// NewStore builds a client from the default AWS credential chain.
func NewStore(ctx context.Context, cfg Config, opts ...store.Option) (*Store, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return New(client, cfg.TablePrefix, opts...), nil
}

// New wraps an existing client.
func New(api API, tablePrefix string, opts ...store.Option) *Store {
	return &Store{
		api: api,
		tables: tables{
			profiles:    tablePrefix + "profiles",
			matches:     tablePrefix + "matches",
			submissions: tablePrefix + "submissions",
		},
		opts: store.BuildOptions(opts...),
	}
}

// Ping describes the matches table, which fails fast on bad credentials or
// an unreachable endpoint.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.tables.matches)})
	return mapErr(err)
}

// Close is a no-op; the SDK client holds no resources that need releasing.
func (s *Store) Close() error { return nil }

func (s *Store) Profiles() store.Profiles {
	return &profilesRepo{api: s.api, table: s.tables.profiles, opts: s.opts}
}

func (s *Store) Matches() store.Matches {
	return &matchesRepo{api: s.api, table: s.tables.matches, opts: s.opts}
}

func (s *Store) Waitlist() store.Collection[domain.WaitlistEntry] {
	return newCollection[domain.WaitlistEntry](s.api, s.tables.submissions, s.opts)
}

func (s *Store) TeamRequests() store.Collection[domain.TeamRequest] {
	return newCollection[domain.TeamRequest](s.api, s.tables.submissions, s.opts)
}

func (s *Store) Reviews() store.Reviews {
	return &reviewsRepo{collection: newCollection[domain.Review](s.api, s.tables.submissions, s.opts)}
}

func (s *Store) ContactMessages() store.Collection[domain.ContactMessage] {
	return newCollection[domain.ContactMessage](s.api, s.tables.submissions, s.opts)
}

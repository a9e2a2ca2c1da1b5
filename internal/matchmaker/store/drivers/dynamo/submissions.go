package dynamo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Submission payloads reuse the domain json tags as attribute names, so the
// stored map has the same shape as the form that produced it.
func jsonTags(o *attributevalue.EncoderOptions) { o.TagKey = "json" }
func jsonTagsDecode(o *attributevalue.DecoderOptions) { o.TagKey = "json" }

type collection[T domain.Payload] struct {
	api   API
	table string
	opts  store.Options
	kind  domain.SubmissionKind
}

func newCollection[T domain.Payload](api API, table string, opts store.Options) *collection[T] {
	var zero T
	return &collection[T]{api: api, table: table, opts: opts, kind: zero.Kind()}
}

func (c *collection[T]) encode(s domain.Submission[T]) (item, error) {
	payload, err := attributevalue.MarshalMapWithOptions(s.Data, jsonTags)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", c.kind, err)
	}
	return item{
		"id":         stringAttr(s.ID),
		"kind":       stringAttr(string(c.kind)),
		"created_at": millisAttr(s.CreatedAt),
		"payload":    &types.AttributeValueMemberM{Value: payload},
	}, nil
}

func (c *collection[T]) decode(it item) (domain.Submission[T], error) {
	kind, _ := it["kind"].(*types.AttributeValueMemberS)
	if kind == nil || kind.Value != string(c.kind) {
		return domain.Submission[T]{}, store.ErrNotFound
	}

	created, ok := it["created_at"].(*types.AttributeValueMemberN)
	if !ok {
		return domain.Submission[T]{}, malformed(errors.New("missing created_at"))
	}
	ms, err := strconv.ParseInt(created.Value, 10, 64)
	if err != nil {
		return domain.Submission[T]{}, malformed(err)
	}

	payload, ok := it["payload"].(*types.AttributeValueMemberM)
	if !ok {
		return domain.Submission[T]{}, malformed(errors.New("missing payload"))
	}

	s := domain.Submission[T]{ID: itemID(it), CreatedAt: fromMillis(ms)}
	if err := attributevalue.UnmarshalMapWithOptions(payload.Value, &s.Data, jsonTagsDecode); err != nil {
		return domain.Submission[T]{}, malformed(err)
	}
	if err := s.Data.Validate(); err != nil {
		return domain.Submission[T]{}, malformed(err)
	}
	return s, nil
}

func (c *collection[T]) Create(ctx context.Context, s domain.Submission[T]) error {
	it, err := c.encode(s)
	if err != nil {
		return err
	}
	_, err = c.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(c.table),
		Item:                it,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if isConditionFailed(err) {
		return store.ErrAlreadyExists
	}
	return mapErr(err)
}

func (c *collection[T]) Get(ctx context.Context, id string) (domain.Submission[T], error) {
	out, err := c.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(c.table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return domain.Submission[T]{}, mapErr(err)
	}
	if out.Item == nil {
		return domain.Submission[T]{}, store.ErrNotFound
	}
	return c.decode(out.Item)
}

func (c *collection[T]) Put(ctx context.Context, s domain.Submission[T]) error {
	it, err := c.encode(s)
	if err != nil {
		return err
	}
	_, err = c.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(c.table),
		Item:                      it,
		ConditionExpression:       aws.String("attribute_exists(id) AND #kind = :kind"),
		ExpressionAttributeNames:  map[string]string{"#kind": "kind"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":kind": stringAttr(string(c.kind))},
	})
	if isConditionFailed(err) {
		return store.ErrNotFound
	}
	return mapErr(err)
}

func (c *collection[T]) kindQuery() *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:                aws.String(c.table),
		IndexName:                aws.String(indexSubmissions),
		KeyConditionExpression:   aws.String("#kind = :kind"),
		ExpressionAttributeNames: map[string]string{"#kind": "kind"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kind": stringAttr(string(c.kind)),
		},
		ScanIndexForward: aws.Bool(false),
	}
}

func (c *collection[T]) List(ctx context.Context, limit int) ([]domain.Submission[T], error) {
	in := c.kindQuery()
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}
	return c.list(ctx, in, limit)
}

func (c *collection[T]) list(ctx context.Context, in *dynamodb.QueryInput, limit int) ([]domain.Submission[T], error) {
	items, err := queryItems(ctx, c.api, in, limit)
	if err != nil {
		return nil, mapQueryErr(err)
	}

	out := make([]domain.Submission[T], 0, len(items))
	for _, it := range items {
		s, err := c.decode(it)
		if err != nil {
			c.opts.Quarantine(ctx, string(c.kind), itemID(it), err)
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (c *collection[T]) Delete(ctx context.Context, id string) error {
	_, err := c.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(c.table),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(id) AND #kind = :kind"),
		ExpressionAttributeNames:  map[string]string{"#kind": "kind"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":kind": stringAttr(string(c.kind))},
	})
	if isConditionFailed(err) {
		return store.ErrNotFound
	}
	return mapErr(err)
}

func (c *collection[T]) Count(ctx context.Context) (int, error) {
	n, err := queryCount(ctx, c.api, c.kindQuery())
	if err != nil {
		return 0, mapQueryErr(err)
	}
	return n, nil
}

type reviewsRepo struct {
	*collection[domain.Review]
}

func (r *reviewsRepo) ListByStatus(ctx context.Context, status domain.ReviewStatus, limit int) ([]domain.Submission[domain.Review], error) {
	in := r.kindQuery()
	in.FilterExpression = aws.String("#payload.#status = :status")
	in.ExpressionAttributeNames["#payload"] = "payload"
	in.ExpressionAttributeNames["#status"] = "status"
	in.ExpressionAttributeValues[":status"] = stringAttr(string(status))
	return r.list(ctx, in, limit)
}

package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type matchesRepo struct {
	api   API
	table string
	opts  store.Options
}

func (r *matchesRepo) Create(ctx context.Context, m domain.Match) error {
	av, err := attributevalue.MarshalMap(toMatchRecord(m))
	if err != nil {
		return fmt.Errorf("marshal match: %w", err)
	}

	_, err = r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if isConditionFailed(err) {
		return store.ErrAlreadyExists
	}
	return mapErr(err)
}

func (r *matchesRepo) Get(ctx context.Context, id string) (domain.Match, error) {
	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return domain.Match{}, mapErr(err)
	}
	if out.Item == nil {
		return domain.Match{}, store.ErrNotFound
	}
	return decodeMatch(out.Item)
}

func (r *matchesRepo) UpdateStatus(ctx context.Context, id string, from, to domain.MatchStatus, at time.Time) error {
	_, err := r.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.table),
		Key:                 idKey(id),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :at"),
		ConditionExpression: aws.String("attribute_exists(id) AND #status = :from"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":to":   stringAttr(string(to)),
			":from": stringAttr(string(from)),
			":at":   millisAttr(at),
		},
	})
	if !isConditionFailed(err) {
		return mapErr(err)
	}

	// The condition failed: either the match is gone or its status moved on.
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	return store.ErrConflict
}

func (r *matchesRepo) UpdateNotes(ctx context.Context, id, notes string, at time.Time) error {
	_, err := r.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.table),
		Key:                 idKey(id),
		UpdateExpression:    aws.String("SET #notes = :notes, #updated_at = :at"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeNames: map[string]string{
			"#notes":      "notes",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":notes": stringAttr(notes),
			":at":    millisAttr(at),
		},
	})
	if isConditionFailed(err) {
		return store.ErrNotFound
	}
	return mapErr(err)
}

func (r *matchesRepo) Delete(ctx context.Context, id string) error {
	_, err := r.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.table),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if isConditionFailed(err) {
		return store.ErrNotFound
	}
	return mapErr(err)
}

func (r *matchesRepo) ListByP1(ctx context.Context, userID string) ([]domain.Match, error) {
	return r.queryParticipant(ctx, indexMatchesP1, "p1_id", userID)
}

func (r *matchesRepo) ListByP2(ctx context.Context, userID string) ([]domain.Match, error) {
	return r.queryParticipant(ctx, indexMatchesP2, "p2_id", userID)
}

func (r *matchesRepo) queryParticipant(ctx context.Context, index, column, userID string) ([]domain.Match, error) {
	items, err := queryItems(ctx, r.api, &dynamodb.QueryInput{
		TableName:                aws.String(r.table),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#user = :user"),
		ExpressionAttributeNames: map[string]string{"#user": column},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user": stringAttr(userID),
		},
		ScanIndexForward: aws.Bool(false),
	}, 0)
	if err != nil {
		return nil, mapQueryErr(err)
	}

	out := r.decodeAll(ctx, items)
	domain.SortMatchesNewestFirst(out)
	return out, nil
}

func (r *matchesRepo) ListAll(ctx context.Context) ([]domain.Match, error) {
	return r.Scan(ctx, 0)
}

// Scan reads every page and keeps the newest limit matches. DynamoDB scans
// in partition hash order, so the cap applies to the result, not the read.
func (r *matchesRepo) Scan(ctx context.Context, limit int) ([]domain.Match, error) {
	items, err := scanItems(ctx, r.api, &dynamodb.ScanInput{TableName: aws.String(r.table)}, 0)
	if err != nil {
		return nil, mapErr(err)
	}

	out := r.decodeAll(ctx, items)
	domain.SortMatchesNewestFirst(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *matchesRepo) Count(ctx context.Context) (int, error) {
	n, err := scanCount(ctx, r.api, &dynamodb.ScanInput{TableName: aws.String(r.table)})
	return n, mapErr(err)
}

func (r *matchesRepo) CountByStatus(ctx context.Context, status domain.MatchStatus) (int, error) {
	n, err := scanCount(ctx, r.api, &dynamodb.ScanInput{
		TableName:                aws.String(r.table),
		FilterExpression:         aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": stringAttr(string(status)),
		},
	})
	return n, mapErr(err)
}

func (r *matchesRepo) decodeAll(ctx context.Context, items []item) []domain.Match {
	out := make([]domain.Match, 0, len(items))
	for _, it := range items {
		m, err := decodeMatch(it)
		if err != nil {
			r.opts.Quarantine(ctx, "matches", itemID(it), err)
			continue
		}
		out = append(out, m)
	}
	return out
}

func decodeMatch(it item) (domain.Match, error) {
	var rec matchRecord
	if err := attributevalue.UnmarshalMap(it, &rec); err != nil {
		return domain.Match{}, malformed(err)
	}
	return rec.toDomain()
}
